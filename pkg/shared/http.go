package shared

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/sevaops/temple-console/pkg/htmx"
)

// ParseID extracts the numeric {id} route variable.
func ParseID(r *http.Request) (uint, error) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// ParseUUID extracts the {id} route variable as a UUID.
func ParseUUID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(mux.Vars(r)["id"])
}

// Redirect sends the browser to path, using an Hx-Redirect header for
// htmx-originated requests so the swap target is not polluted with a
// full document.
func Redirect(w http.ResponseWriter, r *http.Request, path string) {
	if htmx.IsHxRequest(r) {
		htmx.Redirect(w, path)
		return
	}
	http.Redirect(w, r, path, http.StatusFound)
}

// SetFlash stores a one-shot value in a session cookie; the next page
// render consumes and clears it.
func SetFlash(w http.ResponseWriter, name string, value []byte) {
	http.SetCookie(w, &http.Cookie{
		Name:  name,
		Value: base64.URLEncoding.EncodeToString(value),
		Path:  "/",
	})
}

// SetFlashMap stores a map (typically field validation errors) as a
// flash cookie.
func SetFlashMap[K comparable, V any](w http.ResponseWriter, name string, value map[K]V) {
	b, err := json.Marshal(value)
	if err != nil {
		panic(err)
	}
	SetFlash(w, name, b)
}
