// SPDX-License-Identifier: Apache-2.0
package main

import (
	"log"
	"os"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"
	"grishex/internal/lsp"
)

const lsName = "grishex" // Name identifier for the language server

var (
	version = "0.0.1"        // Server version
	handler protocol.Handler // Protocol handler instance (wired up below)
)

func main() {
	// Configure debug logging (1 = debug level, nil = default logger)
	commonlog.Configure(1, nil)

	grishexHandler := lsp.NewGrishexHandler()

	handler = protocol.Handler{
		Initialize:                     grishexHandler.Initialize,
		Initialized:                    grishexHandler.Initialized,
		Shutdown:                       grishexHandler.Shutdown,
		TextDocumentDidOpen:            grishexHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           grishexHandler.TextDocumentDidClose,
		TextDocumentDidChange:          grishexHandler.TextDocumentDidChange,
		TextDocumentSemanticTokensFull: grishexHandler.TextDocumentSemanticTokensFull,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Println("Starting Grishex LSP server", version)

	// Most editors talk LSP over the child process's stdio
	if err := s.RunStdio(); err != nil {
		log.Println("Error starting Grishex LSP server:", err)
		os.Exit(1)
	}
}
