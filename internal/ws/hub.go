package ws

import (
	"encoding/json"
	"log"
	"sync"

	"go-business-ws/pkg/metrics"

	"github.com/gofiber/contrib/websocket"
)

// Event types pushed to connected clients
const (
	EventStockUpdate   = "stock_update"
	EventLowStockAlert = "low_stock_alert"
	EventOrderUpdate   = "order_update"
)

// Actor identifies who triggered an event
type Actor struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Event struct {
	Type    string      `json:"type"`
	Action  string      `json:"action,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	User    *Actor      `json:"user,omitempty"`
	Message string      `json:"message,omitempty"`
}

// Publisher is what services need from the hub
type Publisher interface {
	Publish(event Event)
}

const broadcastQueue = 256

type Hub struct {
	Clients    map[*websocket.Conn]bool
	Register   chan *websocket.Conn
	Unregister chan *websocket.Conn
	Broadcast  chan []byte
	mutex      sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[*websocket.Conn]bool),
		Register:   make(chan *websocket.Conn),
		Unregister: make(chan *websocket.Conn),
		Broadcast:  make(chan []byte, broadcastQueue),
	}
}

// Publish encodes the event and queues it for broadcast without blocking the
// caller. Events from one caller reach clients in publish order; when the
// queue is full the event is dropped.
func (h *Hub) Publish(event Event) {
	msg, err := json.Marshal(event)
	if err != nil {
		log.Printf("ws: failed to encode %s event: %v", event.Type, err)
		return
	}

	select {
	case h.Broadcast <- msg:
		metrics.EventsPublished.WithLabelValues(event.Type).Inc()
	default:
		metrics.EventsDropped.WithLabelValues(event.Type).Inc()
		log.Printf("ws: broadcast queue full, dropping %s event", event.Type)
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.Clients)
}

func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.Register:
			h.mutex.Lock()
			h.Clients[conn] = true
			metrics.ConnectedClients.Set(float64(len(h.Clients)))
			h.mutex.Unlock()
			log.Println("New WS Client Connected")

		case conn := <-h.Unregister:
			h.mutex.Lock()
			if _, ok := h.Clients[conn]; ok {
				delete(h.Clients, conn)
				conn.Close()
			}
			metrics.ConnectedClients.Set(float64(len(h.Clients)))
			h.mutex.Unlock()

		case message := <-h.Broadcast:
			h.mutex.Lock()
			for conn := range h.Clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					conn.Close()
					delete(h.Clients, conn)
				}
			}
			metrics.ConnectedClients.Set(float64(len(h.Clients)))
			h.mutex.Unlock()
		}
	}
}
