package events

import (
	"github.com/asaskevich/EventBus"

	"github.com/yeremiapane/restaurant-pos/models"
)

// Topics published by the order workflow.
const (
	TopicItemAdded   = "cart:item_added"
	TopicItemRemoved = "cart:item_removed"
	TopicOrderSaved  = "order:saved"
)

// CartEvent is the payload behind the transient "added to your order" /
// "removed from your order" feedback on the POS screen.
type CartEvent struct {
	MenuID   int64  `json:"menu_id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Bus is the in-process event bus. The cart publishes here; the websocket
// hub (and tests) subscribe.
type Bus struct {
	bus EventBus.Bus
}

func NewBus() *Bus {
	return &Bus{bus: EventBus.New()}
}

func (b *Bus) PublishItemAdded(ev CartEvent) {
	b.bus.Publish(TopicItemAdded, ev)
}

func (b *Bus) PublishItemRemoved(ev CartEvent) {
	b.bus.Publish(TopicItemRemoved, ev)
}

func (b *Bus) PublishOrderSaved(order models.Order) {
	b.bus.Publish(TopicOrderSaved, order)
}

// SubscribeItemAdded registers fn for every successful cart add.
func (b *Bus) SubscribeItemAdded(fn func(CartEvent)) error {
	return b.bus.Subscribe(TopicItemAdded, fn)
}

// SubscribeItemRemoved registers fn for every successful cart removal.
func (b *Bus) SubscribeItemRemoved(fn func(CartEvent)) error {
	return b.bus.Subscribe(TopicItemRemoved, fn)
}

// SubscribeOrderSaved registers fn for every saved order.
func (b *Bus) SubscribeOrderSaved(fn func(models.Order)) error {
	return b.bus.Subscribe(TopicOrderSaved, fn)
}
