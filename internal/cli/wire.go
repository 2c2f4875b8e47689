package cli

import (
	"fmt"

	"github.com/agentx-labs/devkit/internal/actions"
	"github.com/agentx-labs/devkit/internal/docstore"
	"github.com/agentx-labs/devkit/internal/prompts"
	"github.com/agentx-labs/devkit/internal/router"
	"github.com/agentx-labs/devkit/internal/runtime"
	"github.com/agentx-labs/devkit/internal/scaffold"
	"github.com/agentx-labs/devkit/internal/schema"
)

// app is one fully wired server instance.
type app struct {
	router *router.Router
}

func newApp(runner runtime.Runner) (*app, error) {
	if err := schema.Check(schema.Tools()); err != nil {
		return nil, fmt.Errorf("action registry: %w", err)
	}

	docs := docstore.New()
	orch, err := scaffold.New(scaffold.Options{
		Runner:         runner,
		Docs:           docs,
		PackageManager: settings.PackageManager,
		Logger:         logger.Named("scaffold"),
	})
	if err != nil {
		return nil, err
	}

	tools, err := actions.Bindings(orch)
	if err != nil {
		return nil, err
	}
	engine, err := prompts.New()
	if err != nil {
		return nil, fmt.Errorf("prompt catalogue: %w", err)
	}
	rt, err := router.New(tools, engine, docs, logger.Named("router"))
	if err != nil {
		return nil, err
	}

	return &app{router: rt}, nil
}
