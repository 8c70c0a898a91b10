package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/archpkg/pkgserve/pkg/complete"
	"github.com/archpkg/pkgserve/pkg/config"
)

// Server handles the IPC for package completions.
type Server struct {
	svc       *complete.Service
	cfg       *config.Config
	dec       *msgpack.Decoder
	enc       *msgpack.Encoder
	cachePath string
	dirty     bool
}

// NewServer creates a completion server using stdin/stdout for IPC.
func NewServer(svc *complete.Service, cfg *config.Config) *Server {
	return newServer(svc, cfg, os.Stdin, os.Stdout)
}

func newServer(svc *complete.Service, cfg *config.Config, in io.Reader, out io.Writer) *Server {
	return &Server{
		svc:       svc,
		cfg:       cfg,
		dec:       msgpack.NewDecoder(in),
		enc:       msgpack.NewEncoder(out),
		cachePath: cfg.UsageCachePath(),
	}
}

// Start begins listening for IPC requests. Returns nil on clean EOF, after
// persisting any usage records that have not reached disk yet.
func (s *Server) Start() error {
	log.Debug("Starting IPC server")
	s.send(StatusResponse{Status: "ready"})

	for {
		var req Request
		if err := s.dec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				s.flushPending()
				return nil
			}
			log.Errorf("Decoding request: %v", err)
			return err
		}
		s.handleRequest(req)
	}
}

// flushPending persists usage records accumulated while write-through was
// off, or whose write-through flush failed. Records must survive a clean
// shutdown either way.
func (s *Server) flushPending() {
	if !s.dirty || s.cachePath == "" {
		return
	}
	if err := s.svc.Store().Flush(s.cachePath); err != nil {
		log.Warnf("Failed to flush usage cache on shutdown: %v", err)
		return
	}
	s.dirty = false
}

func (s *Server) handleRequest(req Request) {
	switch req.Action {
	case "", "complete":
		s.handleComplete(req)
	case "record":
		s.handleRecord(req)
	case "health":
		s.send(StatusResponse{ID: req.ID, Status: "ok"})
	default:
		s.sendError(req.ID, fmt.Sprintf("unknown action: %s", req.Action), 400)
	}
}

func (s *Server) handleComplete(req Request) {
	if req.Query == "" {
		s.sendError(req.ID, "missing 'q' parameter", 400)
		return
	}
	if len(req.Query) > s.cfg.Server.MaxQueryLen {
		s.sendError(req.ID, fmt.Sprintf("query exceeds maximum length of %d", s.cfg.Server.MaxQueryLen), 400)
		return
	}

	limit := req.Limit
	if limit == 0 {
		limit = s.cfg.Complete.DefaultLimit
	}
	if limit > s.cfg.Server.MaxLimit {
		limit = s.cfg.Server.MaxLimit
	}

	start := time.Now()
	names, err := s.svc.Complete(req.Query, complete.ParseContext(req.Context), limit)
	if err != nil {
		s.sendError(req.ID, err.Error(), 400)
		return
	}
	elapsed := time.Since(start)

	s.send(CompletionResponse{
		ID:        req.ID,
		Names:     names,
		Count:     len(names),
		TimeTaken: elapsed.Microseconds(),
	})
}

// handleRecord updates the usage store. With write-through on it flushes
// immediately so other shell processes pick the new counts up on their next
// load; otherwise the record stays pending until shutdown.
func (s *Server) handleRecord(req Request) {
	if req.Name == "" {
		s.sendError(req.ID, "missing 'n' parameter", 400)
		return
	}
	s.svc.RecordUsage(req.Name)
	s.dirty = true
	if s.cachePath != "" && s.cfg.Complete.WriteThrough {
		if err := s.svc.Store().Flush(s.cachePath); err != nil {
			log.Warnf("Failed to flush usage cache: %v", err)
		} else {
			s.dirty = false
		}
	}
	s.send(StatusResponse{ID: req.ID, Status: "ok"})
}

func (s *Server) send(response any) {
	if err := s.enc.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

func (s *Server) sendError(id, message string, code int) {
	s.send(ErrorResponse{ID: id, Error: message, Code: code})
}
