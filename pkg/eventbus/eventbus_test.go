package eventbus

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/sevaops/temple-console/pkg/logging"
)

type args struct {
	data interface{}
}

func TestPublisher_Publish(t *testing.T) {
	type args2 struct {
		data interface{}
	}
	logBuffer := bytes.Buffer{}
	log := logrus.New()
	log.SetOutput(&logBuffer)
	log.SetLevel(logrus.WarnLevel)
	publisher := NewEventPublisher(log)
	publisher.Subscribe(func(e *args) {
		t.Error("should not be called")
	})
	publisher.Publish(&args2{
		data: "test",
	})

	if output := logBuffer.String(); output == "" {
		t.Error("should have logged")
	} else if !strings.Contains(output, "eventbus.Publish: no matching subscribers") {
		t.Errorf("should have contained no matching subscribers but got: %q", output)
	}
}

func TestPublisher_Subscribe(t *testing.T) {
	publisher := NewEventPublisher(logging.ConsoleLogger(logrus.WarnLevel))
	called := false
	var data interface{}
	publisher.Subscribe(func(e *args) {
		called = true
		data = e.data
	})
	publisher.Publish(&args{
		data: "test",
	})
	if !called {
		t.Error("should be called")
	}
	if data != "test" {
		t.Errorf("expected: %v, got: %v", "test", data)
	}
}

func TestPublisher_UnsubscribeNamespace(t *testing.T) {
	publisher := NewEventPublisher(logging.ConsoleLogger(logrus.PanicLevel))
	var first, second int
	publisher.SubscribeNS("events.list-1", func(e *args) { first++ })
	publisher.SubscribeNS("events.list-2", func(e *args) { second++ })

	publisher.UnsubscribeNamespace("events.list-1")
	publisher.Publish(&args{data: "x"})
	if first != 0 {
		t.Errorf("expected unsubscribed handler not to fire, fired %d times", first)
	}
	if second != 1 {
		t.Errorf("expected sibling namespace handler to fire once, fired %d times", second)
	}
}

func TestPublisher_UnsubscribePrefix(t *testing.T) {
	publisher := NewEventPublisher(logging.ConsoleLogger(logrus.PanicLevel))
	publisher.SubscribeNS("events.list-1", func(e *args) {})
	publisher.SubscribeNS("events.calendar-9", func(e *args) {})
	publisher.SubscribeNS("volunteers.approval-3", func(e *args) {})

	if got := publisher.NamespaceCount("events"); got != 2 {
		t.Fatalf("expected 2 handlers under events, got %d", got)
	}

	publisher.UnsubscribePrefix("events")
	if got := publisher.NamespaceCount("events"); got != 0 {
		t.Errorf("expected 0 handlers under events after prefix teardown, got %d", got)
	}
	if got := publisher.NamespaceCount("volunteers"); got != 1 {
		t.Errorf("expected volunteers namespace untouched, got %d", got)
	}

	// Prefix matching is segment-aware: "event" must not match "events.*".
	if got := publisher.NamespaceCount("volun"); got != 0 {
		t.Errorf("expected partial segment not to match, got %d", got)
	}
}

func TestMatchSignature(t *testing.T) {
	type args2 struct{}
	if !MatchSignature(func(e *args) {}, []interface{}{&args{}}) {
		t.Error("expected true")
	}
	if MatchSignature(func(e *args) {}, []interface{}{&args2{}}) {
		t.Error("expected false")
	}
	if MatchSignature(func(e *args) {}, []interface{}{}) {
		t.Error("expected false")
	}
	if MatchSignature(func(e *args) {}, []interface{}{&args{}, &args{}}) {
		t.Error("expected false")
	}
}
