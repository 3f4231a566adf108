// Package htmx reads and writes the htmx request/response headers used
// for partial page swaps.
package htmx

import "net/http"

// IsHxRequest reports whether the request was issued by htmx rather
// than a full-page navigation.
func IsHxRequest(r *http.Request) bool {
	return r.Header.Get("Hx-Request") == "true"
}

// IsBoosted reports whether the request came from an hx-boost link.
func IsBoosted(r *http.Request) bool {
	return r.Header.Get("Hx-Boosted") == "true"
}

// Target returns the id of the element the response will be swapped
// into, if any.
func Target(r *http.Request) string {
	return r.Header.Get("Hx-Target")
}

// Redirect instructs htmx to perform a client-side redirect to url.
func Redirect(w http.ResponseWriter, url string) {
	w.Header().Set("Hx-Redirect", url)
}

// PushURL updates the browser history to url without a full reload.
func PushURL(w http.ResponseWriter, url string) {
	w.Header().Set("Hx-Push-Url", url)
}

// Retarget overrides the element the response is swapped into.
func Retarget(w http.ResponseWriter, selector string) {
	w.Header().Set("Hx-Retarget", selector)
}

// SetTrigger fires a client-side event when the response is processed.
func SetTrigger(w http.ResponseWriter, event string, detail string) {
	if detail == "" {
		w.Header().Set("Hx-Trigger", event)
		return
	}
	w.Header().Set("Hx-Trigger", `{"`+event+`": `+detail+`}`)
}
