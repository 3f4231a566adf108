package eventbus

import (
	"reflect"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/sevaops/temple-console/pkg/serrors"
)

// Subscriber is a handler bound under a namespace. Namespaces follow the
// "<feature>.<instance>" convention: page instances bind under their own
// unique namespace, and feature-wide teardown removes every namespace
// sharing the feature prefix.
type Subscriber struct {
	Namespace string
	Handler   interface{}
}

type EventBus interface {
	Publish(args ...interface{})
	Subscribe(handler interface{})
	SubscribeNS(namespace string, handler interface{})
	Unsubscribe(handler interface{})
	// UnsubscribeNamespace removes every handler bound under exactly ns.
	UnsubscribeNamespace(ns string)
	// UnsubscribePrefix removes every handler whose namespace is prefix or
	// a child of it ("events" removes "events", "events.list-1", ...).
	UnsubscribePrefix(prefix string)
	Clear()
	SubscribersCount() int
	NamespaceCount(ns string) int
}

var ErrNoSubscribers = serrors.NewError("EVENTBUS_NO_SUBSCRIBERS", "no matching subscribers", "")

type publisherImpl struct {
	log         *logrus.Logger
	mu          sync.RWMutex
	subscribers []Subscriber
}

func NewEventPublisher(log *logrus.Logger) EventBus {
	return &publisherImpl{log: log}
}

func MatchSignature(handler interface{}, args []interface{}) bool {
	t := reflect.TypeOf(handler)
	if t.Kind() != reflect.Func {
		return false
	}

	if t.NumIn() != len(args) {
		return false
	}

	for i, arg := range args {
		paramType := t.In(i)
		argType := reflect.TypeOf(arg)

		if arg == nil {
			if paramType.Kind() != reflect.Interface && paramType.Kind() != reflect.Ptr {
				return false
			}
			continue
		}

		if paramType.Kind() == reflect.Interface {
			if !argType.Implements(paramType) {
				return false
			}
			continue
		}

		if !argType.AssignableTo(paramType) {
			return false
		}
	}

	return true
}

func (p *publisherImpl) Publish(args ...interface{}) {
	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		in[i] = reflect.ValueOf(arg)
	}

	p.mu.RLock()
	subscribers := make([]Subscriber, len(p.subscribers))
	copy(subscribers, p.subscribers)
	p.mu.RUnlock()

	handled := false
	for _, subscriber := range subscribers {
		v := reflect.ValueOf(subscriber.Handler)
		if !MatchSignature(subscriber.Handler, args) {
			continue
		}
		func() {
			defer func() {
				if r := recover(); r != nil {
					if p.log != nil {
						p.log.Errorf("eventbus: handler %s (ns=%s) panicked with args %v: %v",
							v.Type().String(), subscriber.Namespace, args, r)
					}
				}
			}()
			v.Call(in)
			handled = true
		}()
	}

	if !handled && p.log != nil {
		p.log.Warnf("eventbus.Publish: no matching subscribers for event with args: %v", in)
	}
}

func (p *publisherImpl) Subscribe(handler interface{}) {
	p.SubscribeNS("", handler)
}

func (p *publisherImpl) SubscribeNS(namespace string, handler interface{}) {
	t := reflect.TypeOf(handler)
	if t.Kind() != reflect.Func {
		panic("handler must be a function")
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.subscribers = append(p.subscribers, Subscriber{Namespace: namespace, Handler: handler})
}

func (p *publisherImpl) Unsubscribe(handler interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, subscriber := range p.subscribers {
		if subscriber.Handler == handler {
			p.subscribers = append(p.subscribers[:i], p.subscribers[i+1:]...)
			return
		}
	}
}

func (p *publisherImpl) UnsubscribeNamespace(ns string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.subscribers = filterSubscribers(p.subscribers, func(s Subscriber) bool {
		return s.Namespace != ns
	})
}

func (p *publisherImpl) UnsubscribePrefix(prefix string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.subscribers = filterSubscribers(p.subscribers, func(s Subscriber) bool {
		return !inNamespace(s.Namespace, prefix)
	})
}

func (p *publisherImpl) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.subscribers = nil
}

func (p *publisherImpl) SubscribersCount() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.subscribers)
}

func (p *publisherImpl) NamespaceCount(ns string) int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	n := 0
	for _, s := range p.subscribers {
		if inNamespace(s.Namespace, ns) {
			n++
		}
	}
	return n
}

func inNamespace(ns, prefix string) bool {
	return ns == prefix || strings.HasPrefix(ns, prefix+".")
}

func filterSubscribers(in []Subscriber, keep func(Subscriber) bool) []Subscriber {
	out := in[:0]
	for _, s := range in {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}
