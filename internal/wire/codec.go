package wire

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lguibr/pinball/internal/board"
)

const successPrefix = "success "

// WrapSuccess prefixes a relay→client line per spec.md §4.5 ("forwards
// ... prefixed with success ").
func WrapSuccess(line string) string { return successPrefix + line }

// UnwrapSuccess strips a leading "success " if present.
func UnwrapSuccess(line string) (string, bool) {
	if strings.HasPrefix(line, successPrefix) {
		return line[len(successPrefix):], true
	}
	return line, false
}

// Encode renders msg as a single line, without a trailing newline.
func Encode(msg Message) (string, error) {
	switch m := msg.(type) {
	case GetClientBoardName:
		return "getClientBoardName", nil
	case ClientBoardName:
		return m.Name, nil
	case AllConnectedBoards:
		return "allConnectedBoards= " + strings.Join(m.Boards, " "), nil
	case JoinHorizontal:
		return fmt.Sprintf("joinHorizontal= %s %s", m.Left, m.Right), nil
	case JoinVertical:
		return fmt.Sprintf("joinVertical= %s %s", m.Top, m.Bottom), nil
	case DisconnectWall:
		return fmt.Sprintf("disconnectWall= %s %s", m.Board, m.Wall), nil
	case TeleportPortal:
		return fmt.Sprintf("teleportPortal= %s %s %s %s %s",
			m.DestBoard, m.BallName, formatFloat(m.VX), formatFloat(m.VY), m.PortalName), nil
	case TeleportWall:
		return fmt.Sprintf("teleportWall= %s %s %s %s %s %s %s",
			m.DestBoard, m.BallName, formatFloat(m.VX), formatFloat(m.VY),
			formatFloat(m.X), formatFloat(m.Y), m.Wall), nil
	case ConnectPortal:
		return "connectPortal= " + m.PortalName, nil
	case DisconnectPortal:
		return "disconnectPortal= " + m.PortalName, nil
	case Quit:
		return "quit", nil
	case Failure:
		return "failure", nil
	default:
		return "", fmt.Errorf("wire: unknown message type %T", msg)
	}
}

// Decode parses one received line into a Message. A line that matches
// none of the keyworded forms is treated as a bare board-name response
// to GetClientBoardName (spec.md §6 has no explicit keyword for it).
func Decode(line string) (Message, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, fmt.Errorf("wire: empty line")
	}
	fields := strings.Fields(line)
	switch fields[0] {
	case "getClientBoardName":
		return GetClientBoardName{}, nil
	case "quit":
		return Quit{}, nil
	case "failure":
		return Failure{}, nil
	case "allConnectedBoards=":
		return AllConnectedBoards{Boards: fields[1:]}, nil
	case "joinHorizontal=":
		if len(fields) != 3 {
			return nil, fmt.Errorf("wire: malformed joinHorizontal= line %q", line)
		}
		return JoinHorizontal{Left: fields[1], Right: fields[2]}, nil
	case "joinVertical=":
		if len(fields) != 3 {
			return nil, fmt.Errorf("wire: malformed joinVertical= line %q", line)
		}
		return JoinVertical{Top: fields[1], Bottom: fields[2]}, nil
	case "disconnectWall=":
		if len(fields) != 3 {
			return nil, fmt.Errorf("wire: malformed disconnectWall= line %q", line)
		}
		w, ok := board.ParseWall(fields[2])
		if !ok {
			return nil, fmt.Errorf("wire: unknown wall %q", fields[2])
		}
		return DisconnectWall{Board: fields[1], Wall: w}, nil
	case "teleportPortal=":
		if len(fields) != 6 {
			return nil, fmt.Errorf("wire: malformed teleportPortal= line %q", line)
		}
		vx, vy, err := parseVelocity(fields[3], fields[4])
		if err != nil {
			return nil, err
		}
		return TeleportPortal{DestBoard: fields[1], BallName: fields[2], VX: vx, VY: vy, PortalName: fields[5]}, nil
	case "teleportWall=":
		if len(fields) != 8 {
			return nil, fmt.Errorf("wire: malformed teleportWall= line %q", line)
		}
		vx, vy, err := parseVelocity(fields[3], fields[4])
		if err != nil {
			return nil, err
		}
		x, err := strconv.ParseFloat(fields[5], 64)
		if err != nil {
			return nil, fmt.Errorf("wire: bad x %q: %w", fields[5], err)
		}
		y, err := strconv.ParseFloat(fields[6], 64)
		if err != nil {
			return nil, fmt.Errorf("wire: bad y %q: %w", fields[6], err)
		}
		w, ok := board.ParseWall(fields[7])
		if !ok {
			return nil, fmt.Errorf("wire: unknown wall %q", fields[7])
		}
		return TeleportWall{DestBoard: fields[1], BallName: fields[2], VX: vx, VY: vy, X: x, Y: y, Wall: w}, nil
	case "connectPortal=":
		if len(fields) != 2 {
			return nil, fmt.Errorf("wire: malformed connectPortal= line %q", line)
		}
		return ConnectPortal{PortalName: fields[1]}, nil
	case "disconnectPortal=":
		if len(fields) != 2 {
			return nil, fmt.Errorf("wire: malformed disconnectPortal= line %q", line)
		}
		return DisconnectPortal{PortalName: fields[1]}, nil
	default:
		return ClientBoardName{Name: line}, nil
	}
}

func parseVelocity(vxs, vys string) (float64, float64, error) {
	vx, err := strconv.ParseFloat(vxs, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("wire: bad vx %q: %w", vxs, err)
	}
	vy, err := strconv.ParseFloat(vys, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("wire: bad vy %q: %w", vys, err)
	}
	return vx, vy, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
