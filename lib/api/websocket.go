package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/fosdem/kwartel/lib/log"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(req *http.Request) bool {
		return true
	},
}

func (a *Api) handleWebsocket(w http.ResponseWriter, req *http.Request) {
	logger := log.For("api")

	ws, err := upgrader.Upgrade(w, req, nil)
	if err != nil {
		http.Error(w, fmt.Sprintf("couldn't make websocket: %s", err), 400)
		return
	}
	defer func(ws *websocket.Conn) {
		err := ws.Close()
		if err != nil {
			logger.Error("could not close websocket: " + err.Error())
		}
	}(ws)
	a.wsClients[ws] = true

	go a.websocketWriter(ws)

	a.viewer.Stats.WsClients = len(a.wsClients)

	for {
		_, _, err := ws.ReadMessage()
		if err != nil {
			delete(a.wsClients, ws)
			a.viewer.Stats.WsClients = len(a.wsClients)
			break
		}
	}
}

// websocketWriter pushes the stats to a client every two seconds until the
// connection dies.
func (a *Api) websocketWriter(ws *websocket.Conn) {
	logger := log.For("api")

	pingTicker := time.NewTicker(2 * time.Second)
	defer func() {
		pingTicker.Stop()
		err := ws.Close()
		if err != nil {
			return
		}
	}()
	timeout := 10 * time.Second
	for range pingTicker.C {
		packet, err := json.Marshal(a.viewer.Stats)
		if err != nil {
			return
		}
		err = ws.SetWriteDeadline(time.Now().Add(timeout))
		if err != nil {
			logger.Error("could not set write deadline: " + err.Error())
			return
		}
		if err := ws.WriteMessage(websocket.TextMessage, packet); err != nil {
			return
		}
	}
}
