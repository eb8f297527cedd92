package ws

import (
	"log"
	"net/http"
	"sync"

	"backend/entity"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Event ที่ push ให้ dashboard ของ collector ที่ต่อ websocket ค้างไว้
type Event struct {
	Type    string                `json:"type"` // "created" | "status"
	Request *entity.PickupRequest `json:"request"`
}

// DashboardHub กระจาย event ของ pickup request ให้ทุก connection
// ไม่มีห้อง — collector ทุกคนเห็น feed เดียวกัน
type DashboardHub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan Event
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex
}

func NewDashboardHub() *DashboardHub {
	return &DashboardHub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan Event),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

// คอยฟัง register/unregister/broadcast ตลอดเวลา
func (h *DashboardHub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteJSON(ev); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// implement services.PickupEvents
func (h *DashboardHub) PickupCreated(p *entity.PickupRequest) {
	h.broadcast <- Event{Type: "created", Request: p}
}

func (h *DashboardHub) PickupStatusChanged(p *entity.PickupRequest) {
	h.broadcast <- Event{Type: "status", Request: p}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/dashboard (ผ่าน WSAuthMiddleware role collector มาแล้ว)
func (h *DashboardHub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	h.register <- conn

	// client ไม่ส่งอะไรมา — อ่านไว้แค่รอ close
	go func() {
		defer func() { h.unregister <- conn }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
