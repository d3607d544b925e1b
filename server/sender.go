package main

import (
	"encoding/json"
	"log"

	"github.com/StanislavStefanov/battleship-engine/pkg/web"
	"github.com/StanislavStefanov/battleship-engine/server/player"
	"github.com/gorilla/websocket"
)

//go:generate mockery -name=ResponseSender -output=automock -outpkg=automock -case=underscore
type ResponseSender interface {
	SendResponse(response web.Response, conn player.Connection)
}

// Sender writes responses as JSON text frames. Failures are only logged: a player whose
// connection broke is taken out of the room by his read loop.
type Sender struct {
}

func (s *Sender) SendResponse(response web.Response, conn player.Connection) {
	if conn == nil {
		log.Printf("send %s: no connection", response.Action)
		return
	}
	resp, err := json.Marshal(response)
	if err != nil {
		log.Printf("send %s: marshal error: %v", response.Action, err)
		return
	}
	err = conn.WriteMessage(websocket.TextMessage, resp)
	if err != nil {
		log.Printf("send %s: %v", response.Action, err)
	}
}
