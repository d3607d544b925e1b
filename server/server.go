package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/StanislavStefanov/battleship-engine/pkg"
	"github.com/StanislavStefanov/battleship-engine/pkg/game"
	"github.com/StanislavStefanov/battleship-engine/pkg/web"
	"github.com/StanislavStefanov/battleship-engine/server/player"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

type Server struct {
	mu          sync.Mutex
	clients     map[string]*player.Player
	rooms       map[string]*Room
	connectRoom map[string]chan *player.Player
	register    chan player.Connection
	sender      ResponseSender
}

func NewServer(sender ResponseSender) *Server {
	return &Server{
		clients:     make(map[string]*player.Player),
		rooms:       make(map[string]*Room),
		connectRoom: make(map[string]chan *player.Player),
		register:    make(chan player.Connection),
		sender:      sender,
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

func ServeWs(s *Server, w http.ResponseWriter, r *http.Request) {
	log.Println("connection has arrived from", r.RemoteAddr)
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println(err)
		return
	}
	s.register <- conn
}

func (s *Server) run() {
	for conn := range s.register {
		pl := s.RegisterClient(conn)
		go readLoop(pl, s)
	}
}

func (s *Server) RegisterClient(conn player.Connection) *player.Player {
	playerId := uuid.New().String()
	log.Printf("register %s", playerId)

	pl := &player.Player{
		Conn: conn,
		Id:   playerId,
	}
	s.mu.Lock()
	s.clients[playerId] = pl
	s.mu.Unlock()

	resp := web.BuildResponse(pkg.Register, "Connected to server.", map[string]interface{}{"id": playerId})
	s.sender.SendResponse(resp, conn)

	return pl
}

// readLoop serves lobby requests of a player until the player enters a room or leaves.
func readLoop(player *player.Player, s *Server) {
	for {
		_, bytes, err := player.Conn.ReadMessage()
		if err != nil {
			log.Println("while read:", err)
			s.deletePlayer(player.Id)
			return
		}

		var request web.Request
		if err := json.Unmarshal(bytes, &request); err != nil {
			log.Println("while unmarshal:", err)
			resp := web.BuildResponse(pkg.Retry, "malformed request", nil)
			s.sender.SendResponse(resp, player.Conn)
			continue
		}

		switch request.Action {
		case pkg.Exit:
			s.deletePlayer(player.Id)
			_ = player.Conn.Close()
			return
		case pkg.ListRooms:
			resp := web.BuildResponse(pkg.Info, "Rooms: ", s.ListRooms())
			s.sender.SendResponse(resp, player.Conn)
		case pkg.CreateRoom:
			room, join := s.CreateRoom(player.Id)
			go s.runRoom(room, join)
			return
		case pkg.JoinRoom:
			roomId, err := request.StringArg("roomId")
			if err != nil {
				resp := web.BuildResponse(pkg.Retry, "Invalid room ID", nil)
				s.sender.SendResponse(resp, player.Conn)
				continue
			}
			if s.joinRoom(roomId, player) {
				return
			}
		case pkg.JoinRandom:
			if s.joinRandomRoom(player) {
				return
			}
		default:
			resp := web.BuildResponse(pkg.Retry, fmt.Sprintf("Unknown action: %s.", request.Action), nil)
			s.sender.SendResponse(resp, player.Conn)
		}
	}
}

func (s *Server) deletePlayer(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.clients, id)
}

// ListRooms maps every room id to the number of players in it.
func (s *Server) ListRooms() map[string]interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	roomsInfo := make(map[string]interface{})
	for _, r := range s.rooms {
		name, playersCount := r.GetRoomInfo()
		roomsInfo[name] = playersCount
	}
	return roomsInfo
}

// CreateRoom seats the client in a new room and returns it along with the channel on which
// the room receives its second player.
func (s *Server) CreateRoom(clientId string) (*Room, chan *player.Player) {
	s.mu.Lock()
	defer s.mu.Unlock()

	roomID := uuid.New().String()
	room := CreateRoom(roomID, s.clients[clientId], make(chan struct{}, 1), s.sender)
	s.rooms[roomID] = room

	join := make(chan *player.Player, 1)
	s.connectRoom[roomID] = join
	delete(s.clients, clientId)
	return room, join
}

func (s *Server) joinRoom(roomID string, player *player.Player) bool {
	s.mu.Lock()
	room := s.rooms[roomID]
	join, open := s.connectRoom[roomID]
	if room == nil {
		s.mu.Unlock()
		resp := web.BuildResponse(pkg.Retry, fmt.Sprintf("room with id %s doesnt exist", roomID), nil)
		s.sender.SendResponse(resp, player.Conn)
		return false
	}
	if !open {
		s.mu.Unlock()
		resp := web.BuildResponse(pkg.Retry, fmt.Sprintf("room %s is already full", roomID), nil)
		s.sender.SendResponse(resp, player.Conn)
		return false
	}
	delete(s.connectRoom, roomID)
	delete(s.clients, player.Id)
	// join is buffered and the delete above admits a single joiner.
	join <- player
	s.mu.Unlock()
	return true
}

func (s *Server) joinRandomRoom(player *player.Player) bool {
	roomID := s.findRoom()
	if roomID == "" {
		resp := web.BuildResponse(pkg.Retry, "there are no free rooms at the moment", nil)
		s.sender.SendResponse(resp, player.Conn)
		return false
	}

	return s.joinRoom(roomID, player)
}

// findRoom returns the id of a room still waiting for its second player.
func (s *Server) findRoom() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id := range s.connectRoom {
		return id
	}
	return ""
}

// retireRoom removes the room from the lobby. A player handed to the room that it never
// seated is returned so the caller can send him back.
func (s *Server) retireRoom(id string, join <-chan *player.Player) *player.Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rooms, id)
	delete(s.connectRoom, id)

	select {
	case late := <-join:
		return late
	default:
		return nil
	}
}

// runRoom is the only goroutine that touches the room's game. Read loops of both players
// feed it through one channel until the room is done.
func (s *Server) runRoom(r *Room, join <-chan *player.Player) {
	wg := &sync.WaitGroup{}
	requests := make(chan web.Request)
	stop := make(chan struct{})
	log.Printf("start room %s", r.Id)

	first := r.Players[game.Player1]
	wg.Add(1)
	go playerReadLoop(first, requests, stop, wg)

	resp := web.BuildResponse(pkg.Wait,
		fmt.Sprintf("You have created room %s. Wait for an opponent to join the room.", r.Id),
		map[string]interface{}{"id": r.Id})
	s.sender.SendResponse(resp, first.Conn)

	for {
		select {
		case request := <-requests:
			r.ProcessCommand(request)
		case second := <-join:
			s.joinRunningRoom(r, second, requests, stop, wg)
		case <-r.Done:
			log.Printf("close room %s", r.Id)
			if late := s.retireRoom(r.Id, join); late != nil {
				s.returnToLobby(late, fmt.Sprintf("room %s was closed", r.Id))
			}
			r.closeRoom()
			close(stop)
			wg.Wait()
			return
		}
	}
}

func (s *Server) returnToLobby(p *player.Player, message string) {
	s.mu.Lock()
	s.clients[p.Id] = p
	s.mu.Unlock()

	s.sender.SendResponse(web.BuildResponse(pkg.Retry, message, nil), p.Conn)
	go readLoop(p, s)
}

func (s *Server) joinRunningRoom(r *Room, second *player.Player, requests chan<- web.Request, stop <-chan struct{}, wg *sync.WaitGroup) {
	if err := r.Join(second); err != nil {
		s.returnToLobby(second, err.Error())
		return
	}

	resp := web.BuildResponse(pkg.Wait,
		fmt.Sprintf("You have joined room %s.", r.Id),
		map[string]interface{}{"id": r.Id})
	s.sender.SendResponse(resp, second.Conn)

	wg.Add(1)
	go playerReadLoop(second, requests, stop, wg)

	r.promptPlacement(game.Player1)
	r.promptPlacement(game.Player2)
}

// playerReadLoop forwards the requests of a seated player to the room. A broken connection
// is reported to the room as an exit of that player.
func playerReadLoop(p *player.Player, requests chan<- web.Request, stop <-chan struct{}, wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		var req web.Request
		_, bytes, err := p.Conn.ReadMessage()
		if err != nil {
			log.Printf("player %s: %v", p.Id, err)
			req = web.BuildRequest(p.Id, pkg.Exit, nil)
		} else if err := json.Unmarshal(bytes, &req); err != nil {
			log.Printf("player %s: while unmarshal: %v", p.Id, err)
			continue
		}
		req.PlayerId = p.Id

		select {
		case requests <- req:
		case <-stop:
			return
		}
		if req.Action == pkg.Exit {
			return
		}
	}
}
