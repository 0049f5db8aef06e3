package events

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/yeremiapane/restaurant-pos/models"
	"github.com/yeremiapane/restaurant-pos/utils"
)

// Message is the frame pushed to connected POS screens.
type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub holds every connected POS screen and fans bus events out to them so
// the UI can show its snackbar feedback.
type Hub struct {
	clients map[*websocket.Conn]struct{}
	mutex   sync.Mutex
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]struct{})}
}

// Listen wires the hub to the cart and order topics. Call once at startup.
func (h *Hub) Listen(bus *Bus) error {
	if err := bus.SubscribeItemAdded(func(ev CartEvent) {
		h.broadcast(Message{Event: TopicItemAdded, Data: ev})
	}); err != nil {
		return err
	}
	if err := bus.SubscribeItemRemoved(func(ev CartEvent) {
		h.broadcast(Message{Event: TopicItemRemoved, Data: ev})
	}); err != nil {
		return err
	}
	return bus.SubscribeOrderSaved(func(order models.Order) {
		h.broadcast(Message{Event: TopicOrderSaved, Data: order})
	})
}

// Register -> adds a connection to the set.
func (h *Hub) Register(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.clients[conn] = struct{}{}
}

// Unregister -> releases a connection.
func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	delete(h.clients, conn)
	conn.Close()
}

func (h *Hub) broadcast(msg Message) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	data, err := json.Marshal(msg)
	if err != nil {
		utils.ErrorLogger.Printf("Error marshaling message: %v", err)
		return
	}

	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			utils.ErrorLogger.Printf("Error sending message to client: %v", err)
		}
	}
}
