package anchor

import (
	"sync"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
)

type eventManager struct {
	subscriptions     map[subscriptionID]*eventSubscription
	subscriptionsLock sync.RWMutex
	logger            hclog.Logger
}

func newEventManager(logger hclog.Logger) *eventManager {
	return &eventManager{
		logger:        logger.Named("event-manager"),
		subscriptions: make(map[subscriptionID]*eventSubscription),
	}
}

// Subscription is an active listener for contract events
type Subscription struct {
	// Ch delivers the subscribed events
	Ch <-chan *Event

	id subscriptionID
}

// subscribe registers a new listener for contract events. An empty type
// list subscribes to every event.
func (em *eventManager) subscribe(eventTypes []EventType) *Subscription {
	em.subscriptionsLock.Lock()
	defer em.subscriptionsLock.Unlock()

	id := subscriptionID(uuid.New().String())
	subscription := &eventSubscription{
		eventTypes: eventTypes,
		outputCh:   make(chan *Event, 16),
		doneCh:     make(chan struct{}),
	}

	em.subscriptions[id] = subscription
	em.logger.Debug("added new subscription", "id", id)

	return &Subscription{
		Ch: subscription.outputCh,
		id: id,
	}
}

// cancelSubscription stops a subscription for contract events
func (em *eventManager) cancelSubscription(id subscriptionID) {
	em.subscriptionsLock.Lock()
	defer em.subscriptionsLock.Unlock()

	if subscription, ok := em.subscriptions[id]; ok {
		subscription.close()
		delete(em.subscriptions, id)
		em.logger.Debug("canceled subscription", "id", id)
	}
}

// close stops the event manager, effectively cancelling all subscriptions
func (em *eventManager) close() {
	em.subscriptionsLock.Lock()
	defer em.subscriptionsLock.Unlock()

	for id, subscription := range em.subscriptions {
		subscription.close()
		delete(em.subscriptions, id)
	}
}

// fireEvent alerts listeners of a new contract event
func (em *eventManager) fireEvent(event *Event) {
	em.subscriptionsLock.RLock()
	defer em.subscriptionsLock.RUnlock()

	for _, subscription := range em.subscriptions {
		subscription.pushEvent(event)
	}
}
