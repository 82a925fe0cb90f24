package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"myHomeBack/internal/models"
)

// WebSocketManager delivers new messages to connected clients. Persistence
// goes through the message service; the hub only handles fan-out.
type WebSocketManager struct {
	clients    map[int]*websocket.Conn
	broadcast  chan models.Message
	register   chan Client
	unregister chan int
}

type Client struct {
	ID     int
	Socket *websocket.Conn
}

func NewWebSocketManager() *WebSocketManager {
	return &WebSocketManager{
		clients:    make(map[int]*websocket.Conn),
		broadcast:  make(chan models.Message),
		register:   make(chan Client),
		unregister: make(chan int),
	}
}

func (ws *WebSocketManager) Run() {
	for {
		select {
		case client := <-ws.register:
			ws.clients[client.ID] = client.Socket
		case clientID := <-ws.unregister:
			if conn, ok := ws.clients[clientID]; ok {
				conn.Close()
				delete(ws.clients, clientID)
			}
		case msg := <-ws.broadcast:
			if conn, ok := ws.clients[msg.ReceiverID]; ok {
				if err := conn.WriteJSON(msg); err != nil {
					log.Println("Error sending message:", err)
					// Drop the client inline; sending to unregister
					// from here would block the loop on itself.
					conn.Close()
					delete(ws.clients, msg.ReceiverID)
				}
			}
		}
	}
}

func (app *application) WebSocketHandler(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WebSocket upgrade error:", err)
		return
	}

	var clientData struct {
		UserID int `json:"user_id"`
	}
	if err := conn.ReadJSON(&clientData); err != nil {
		log.Println("Failed to read client data:", err)
		conn.Close()
		return
	}

	app.wsManager.register <- Client{ID: clientData.UserID, Socket: conn}

	go app.handleWebSocketMessages(conn, clientData.UserID)
}

func (app *application) handleWebSocketMessages(conn *websocket.Conn, userID int) {
	defer func() {
		app.wsManager.unregister <- userID
	}()

	for {
		var msg models.Message
		if err := conn.ReadJSON(&msg); err != nil {
			log.Println("Error reading message:", err)
			break
		}
		msg.SenderID = userID

		saved, err := app.messageService.CreateMessage(context.Background(), msg)
		if err != nil {
			log.Println("Error saving message:", err)
			continue
		}

		app.wsManager.broadcast <- saved
	}
}
