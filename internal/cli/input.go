// Package cli handles cmd line input for testing completions interactively.
package cli

import (
	"bufio"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/archpkg/pkgserve/internal/logger"
	"github.com/archpkg/pkgserve/pkg/complete"
	"github.com/archpkg/pkgserve/pkg/pkgindex"
)

// InputHandler reads queries from stdin and prints ranked completions with
// package metadata. Intended for testing and debugging the ranking, not for
// shell integration (that path prints bare names).
type InputHandler struct {
	svc   *complete.Service
	ctx   complete.Context
	limit int
	out   *log.Logger
}

// NewInputHandler initializes the handler with the query context and limit
// every interactive query will use.
func NewInputHandler(svc *complete.Service, ctx complete.Context, limit int) *InputHandler {
	return &InputHandler{
		svc:   svc,
		ctx:   ctx,
		limit: limit,
		out:   logger.New(""),
	}
}

// Start begins the interface loop. It prompts, reads a line from stdin, and
// prints the ranked results. Terminates on stdin EOF or read error.
func (h *InputHandler) Start() error {
	h.out.Print("pkgserve interactive mode")
	h.out.Printf("context: %s, limit: %d", h.ctx, h.limit)
	h.out.Print("type a partial package name and press Enter (Ctrl+C to exit):")

	reader := bufio.NewReader(os.Stdin)
	for {
		h.out.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return nil
		}
		query := strings.TrimSpace(line)
		if query == "" {
			continue
		}
		h.handleQuery(query)
	}
}

func (h *InputHandler) handleQuery(query string) {
	start := time.Now()
	names, err := h.svc.Complete(query, h.ctx, h.limit)
	elapsed := time.Since(start)

	if err != nil {
		log.Errorf("Completion failed for %q: %v", query, err)
		return
	}
	log.Debugf("Took [ %v ] for query '%s'", elapsed, query)

	if len(names) == 0 {
		log.Warnf("No completions found for query: '%s'", query)
		return
	}

	h.out.Printf("Found %d completions for '%s':", len(names), query)
	index := h.svc.Index()
	for i, name := range names {
		entry, ok := index.Get(name)
		if !ok {
			h.out.Printf("%2d. %s", i+1, name)
			continue
		}
		h.out.Printf("%2d. %-28s %-10s %s", i+1, name, entry.Source, entry.Description)
		if hint := commandHint(entry, h.ctx); hint != "" {
			h.out.Printf("    %s", hint)
		}
	}
}

func commandHint(entry pkgindex.PackageEntry, ctx complete.Context) string {
	if ctx == complete.ContextRemove {
		return pkgindex.RemoveCommand(entry)
	}
	return pkgindex.InstallCommand(entry)
}
