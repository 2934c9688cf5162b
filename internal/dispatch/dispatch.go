// Package dispatch maps named operations onto OS-metric queries. The
// registry is a fixed finite table: requests whose operation name is not in
// it are rejected before any OS call, and argument validation happens ahead
// of the handler as well.
package dispatch

import (
	"context"
	"fmt"

	"github.com/rileyhilliard/sysmon/internal/collector"
	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/rileyhilliard/sysmon/internal/logger"
)

// Handler executes one operation against the OS-metrics layer.
type Handler func(ctx context.Context, args Args) (any, error)

// ParamType is the JSON-schema type of an operation parameter.
type ParamType string

const (
	TypeNumber  ParamType = "number"
	TypeInteger ParamType = "integer"
	TypeString  ParamType = "string"
	TypeBoolean ParamType = "boolean"
)

// Param describes one argument of an operation.
type Param struct {
	Name        string
	Type        ParamType
	Description string
	Required    bool
	Default     any
	Enum        []string
}

// Operation is one entry of the fixed registry.
type Operation struct {
	Name        string
	Description string
	Params      []Param
	Handler     Handler
}

// Dispatcher validates operation requests and forwards them to handlers.
type Dispatcher struct {
	ops   map[string]Operation
	order []string
	log   logger.Logger
}

// New builds the dispatcher with the standard operation registry bound to
// the given collector.
func New(c *collector.Collector, log logger.Logger) *Dispatcher {
	if log == nil {
		log = logger.Noop()
	}
	return newDispatcher(buildRegistry(c), log)
}

func newDispatcher(ops []Operation, log logger.Logger) *Dispatcher {
	d := &Dispatcher{
		ops:   make(map[string]Operation, len(ops)),
		order: make([]string, 0, len(ops)),
		log:   log,
	}
	for _, op := range ops {
		d.ops[op.Name] = op
		d.order = append(d.order, op.Name)
	}
	return d
}

// Operations returns the registry entries in their fixed listing order.
func (d *Dispatcher) Operations() []Operation {
	out := make([]Operation, 0, len(d.order))
	for _, name := range d.order {
		out = append(out, d.ops[name])
	}
	return out
}

// Lookup returns the operation registered under name.
func (d *Dispatcher) Lookup(name string) (Operation, bool) {
	op, ok := d.ops[name]
	return op, ok
}

// Dispatch validates the operation name and argument names, then runs the
// handler. Unknown names fail with UNKNOWN_OPERATION without touching the
// OS layer; undeclared arguments fail with INVALID_ARGUMENT the same way.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, args map[string]any) (any, error) {
	op, ok := d.ops[name]
	if !ok {
		return nil, errors.New(errors.ErrUnknownOperation,
			fmt.Sprintf("Unknown operation '%s'", name),
			"Supported operations: "+d.operationNames())
	}

	for key := range args {
		if !op.declares(key) {
			return nil, errors.New(errors.ErrInvalidArgument,
				fmt.Sprintf("Operation '%s' has no argument '%s'", name, key),
				"")
		}
	}

	d.log.Debug("dispatch %s args=%v", name, args)
	result, err := op.Handler(ctx, Args(args))
	if err != nil {
		d.log.Debug("dispatch %s failed: %v", name, err)
		return nil, err
	}
	return result, nil
}

func (op Operation) declares(arg string) bool {
	for _, p := range op.Params {
		if p.Name == arg {
			return true
		}
	}
	return false
}

func (d *Dispatcher) operationNames() string {
	names := ""
	for i, n := range d.order {
		if i > 0 {
			names += ", "
		}
		names += n
	}
	return names
}
