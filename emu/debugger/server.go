package debugger

import (
	"context"
	"net"
	"net/http"
	"sync"

	"github.com/go-faster/errors"
	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"

	"nesdbg/emu/log"
	"nesdbg/hw"
	"nesdbg/hw/apu"
)

// A Target is the emulator a remote debugger controls.
type Target interface {
	Debugger() *Debugger
	CPU() *hw.CPU

	Step() hw.StepResult
	StepCycle() hw.StepResult
	RunUntilBreak(maxCycles int64) hw.StepResult

	Peek(addr uint16) uint8
	Poke(addr uint16, val uint8)
	APUState() apu.State
	RegisterValue(group, name string) (uint16, error)
	SetRegisterValue(group, name string, val uint16) error
}

var errServerClosed = errors.New("debugger server closed")

// runSlice is the number of cycles emulated between two checks for
// incoming requests, while running.
const runSlice = 29780

// A Server lets a remote debugger UI control a Target through a websocket.
//
// Requests are read by one goroutine per connection and queued to the
// emulation loop, Serve, which executes them between emulation slices. Only
// the emulation loop touches the target.
type Server struct {
	addr string
	reqs chan *request
	done chan struct{} // closed when the emulation loop exits

	mu      sync.Mutex
	clients map[*client]struct{}
	ln      net.Listener
}

type request struct {
	msg   Request
	reply chan []byte
}

type client struct {
	ws  *websocket.Conn
	out chan []byte
}

func NewServer(addr string) *Server {
	return &Server{
		addr:    addr,
		reqs:    make(chan *request),
		done:    make(chan struct{}),
		clients: make(map[*client]struct{}),
	}
}

// Addr returns the address the server listens on, once Serve has started.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln == nil {
		return nil
	}
	return s.ln.Addr()
}

// Serve runs the emulation loop of t, driven by remote requests, until ctx
// is done. Emulation starts paused.
func (s *Server) Serve(ctx context.Context, t Target) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return errors.Wrap(err, "debugger server")
	}
	s.mu.Lock()
	s.ln = ln
	s.mu.Unlock()

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebsocket)
	srv := &http.Server{Handler: mux}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.ModDbg.InfoZ("debugger server listening").String("addr", ln.Addr().String()).End()
		if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		return srv.Close()
	})
	g.Go(func() error {
		return s.loop(ctx, t)
	})
	return g.Wait()
}

func (s *Server) loop(ctx context.Context, t Target) error {
	defer close(s.done)

	sess := &session{t: t}
	for {
		if !sess.running {
			select {
			case <-ctx.Done():
				return nil
			case req := <-s.reqs:
				req.reply <- sess.exec(req.msg)
			}
			continue
		}

	drain:
		for {
			select {
			case req := <-s.reqs:
				req.reply <- sess.exec(req.msg)
			default:
				break drain
			}
		}
		if ctx.Err() != nil {
			return nil
		}
		if !sess.running {
			continue
		}
		if res := t.RunUntilBreak(runSlice); res.Stopped() {
			sess.running = false
			s.broadcast(encodeEvent("break", sess.encodeState))
		}
	}
}

func (s *Server) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     func(r *http.Request) bool { return true },
	}

	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.ModDbg.ErrorZ("failed to perform websocket handshake").Error("err", err).End()
		return
	}
	defer ws.Close()

	log.ModDbg.DebugZ("websocket handshake success").String("remote", r.RemoteAddr).End()

	c := &client{ws: ws, out: make(chan []byte, 16)}
	s.addClient(c)
	defer s.removeClient(c)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for msg := range c.out {
			if err := ws.WriteMessage(websocket.TextMessage, msg); err != nil {
				log.ModDbg.ErrorZ("write to debugger failed").Error("err", err).End()
				return
			}
		}
	}()

	err = s.readRequests(r.Context(), c)
	log.ModDbg.DebugZ("connection to debugger ended").Error("err", err).End()

	s.removeClient(c)
	wg.Wait()
}

func (s *Server) readRequests(ctx context.Context, c *client) error {
	for {
		_, buf, err := c.ws.ReadMessage()
		if err != nil {
			return err
		}

		msg, err := DecodeRequest(buf)
		if err != nil {
			log.ModDbg.WarnZ("invalid debugger request").Error("err", err).End()
			s.send(c, encodeResponse(msg.ID, err, nil))
			continue
		}

		log.ModDbg.DebugZ("received debugger request").
			Int64("id", msg.ID).
			String("cmd", msg.Cmd).
			End()

		req := &request{msg: msg, reply: make(chan []byte, 1)}
		select {
		case s.reqs <- req:
		case <-s.done:
			return errServerClosed
		case <-ctx.Done():
			return ctx.Err()
		}
		s.send(c, <-req.reply)
	}
}

func (s *Server) addClient(c *client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients[c] = struct{}{}
}

func (s *Server) removeClient(c *client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.clients[c]; ok {
		delete(s.clients, c)
		close(c.out)
	}
}

// send queues msg for c. Slow clients lose messages.
func (s *Server) send(c *client, msg []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.clients[c]; !ok {
		return
	}
	select {
	case c.out <- msg:
	default:
		log.ModDbg.WarnZ("debugger client too slow, dropping message").End()
	}
}

func (s *Server) broadcast(msg []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for c := range s.clients {
		select {
		case c.out <- msg:
		default:
		}
	}
}
