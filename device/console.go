package device

import (
	"io"
	"log"
)

// Console is the interactive keyboard. A pump goroutine moves keystrokes
// from the input stream into a buffered channel, so the status-register
// probe observes pending input without ever blocking on the host.
type Console struct {
	keys chan byte
}

var _ Keyboard = (*Console)(nil)

// NewConsole starts the pump over in (normally the raw-mode terminal).
// The pump exits when in reaches EOF or fails.
func NewConsole(in io.Reader) (con *Console) {
	con = &Console{
		keys: make(chan byte, 16),
	}

	go con.pump(in)

	return
}

func (con *Console) pump(in io.Reader) {
	defer close(con.keys)

	var one [1]byte
	for {
		n, err := in.Read(one[:])
		if n > 0 {
			con.keys <- one[0]
		}
		if err != nil {
			if err != io.EOF {
				log.Printf("lc3: keyboard: %v", err)
			}
			return
		}
	}
}

// Poll reports a pending keystroke without blocking.
func (con *Console) Poll() (key byte, ok bool) {
	select {
	case key, ok = <-con.keys:
	default:
	}
	return
}

// Key blocks until a keystroke arrives, or reports ErrKeyboardClosed once
// the input stream has ended.
func (con *Console) Key() (key byte, err error) {
	key, ok := <-con.keys
	if !ok {
		err = ErrKeyboardClosed
	}
	return
}
