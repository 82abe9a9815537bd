package render

import (
	"net/http"
	"time"

	"github.com/lguibr/pinball/internal/board"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/websocket"
)

// SnapshotStreamHandler serves board.Snapshot values as JSON over a
// websocket, one per period, grounded on the teacher's
// server.HandleSubscribe / websocket.JSON.Send pattern. It is a debug
// aid, not a real renderer (spec.md §1 Non-goal).
func SnapshotStreamHandler(s Snapshotter, period time.Duration) http.Handler {
	return websocket.Handler(func(ws *websocket.Conn) {
		defer ws.Close()
		ticker := time.NewTicker(period)
		defer ticker.Stop()
		for range ticker.C {
			if err := websocket.JSON.Send(ws, s.Snapshot()); err != nil {
				logrus.WithError(err).Debug("render: snapshot stream client disconnected")
				return
			}
		}
	})
}

var _ Snapshotter = (*board.Board)(nil)
