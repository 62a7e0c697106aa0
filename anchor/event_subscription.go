package anchor

type subscriptionID string

type eventSubscription struct {
	// eventTypes is the list of subscribed event types
	eventTypes []EventType

	// outputCh is the update channel for the subscriber
	outputCh chan *Event

	// doneCh indicating that the subscription is terminated
	doneCh chan struct{}
}

// eventSupported checks if the event is supported by the subscription
func (es *eventSubscription) eventSupported(eventType EventType) bool {
	if len(es.eventTypes) == 0 {
		return true
	}

	for _, supportedType := range es.eventTypes {
		if supportedType == eventType {
			return true
		}
	}

	return false
}

// close stops the event subscription
func (es *eventSubscription) close() {
	close(es.doneCh)
	close(es.outputCh)
}

// pushEvent sends the event off for processing by the subscription. [BLOCKING]
func (es *eventSubscription) pushEvent(event *Event) {
	if es.eventSupported(event.Type) {
		select {
		case es.outputCh <- event:
		case <-es.doneCh:
			return
		}
	}
}
