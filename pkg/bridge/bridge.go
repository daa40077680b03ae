package bridge

import (
	"fmt"
	"log/slog"
	"runtime/debug"
	"strings"

	"github.com/google/uuid"

	"github.com/bobi-voice/bobi/pkg/errorsx"
	"github.com/bobi-voice/bobi/pkg/redact"
)

type registration struct {
	provider    string
	description string
	handler     HandlerFunc
}

// Bridge is the single point of entry for invoking any named capability.
// The registry is built once at construction and read-only afterward, so
// Dispatch needs no locking and is safe for concurrent callers. Mutable
// state, if any, lives inside individual providers.
type Bridge struct {
	log   *slog.Logger
	names []string // registration order, kept for stable diagnostics
	tools map[string]registration
}

// New builds a bridge in two phases: base providers are registered
// unconditionally, then each optional provider is attempted in isolation.
// An optional provider that fails to build is logged and skipped without
// affecting the others. A duplicate tool name is a configuration bug and
// fails construction.
func New(log *slog.Logger, base []Provider, optional ...OptionalProvider) (*Bridge, error) {
	if log == nil {
		log = slog.Default()
	}
	b := &Bridge{
		log:   log,
		tools: make(map[string]registration),
	}

	for _, p := range base {
		if err := b.register(p); err != nil {
			return nil, err
		}
	}

	for _, build := range optional {
		p, err := build()
		if err != nil {
			err = errorsx.Wrap(err, errorsx.ReasonProviderInit)
			log.Warn("optional_provider_skipped",
				slog.String("reason", string(errorsx.Reason(err))),
				slog.String("error", err.Error()))
			continue
		}
		if err := b.register(p); err != nil {
			return nil, err
		}
	}

	log.Info("tool_bridge_ready", slog.Int("tool_count", len(b.names)))
	return b, nil
}

func (b *Bridge) register(p Provider) error {
	for _, t := range p.Tools() {
		if strings.TrimSpace(t.Name) == "" {
			return errorsx.New(fmt.Sprintf("provider %q exposes a tool with an empty name", p.Name()), errorsx.ReasonConfig)
		}
		if t.Handler == nil {
			return errorsx.New(fmt.Sprintf("tool %q from provider %q has no handler", t.Name, p.Name()), errorsx.ReasonConfig)
		}
		if prev, ok := b.tools[t.Name]; ok {
			return errorsx.New(
				fmt.Sprintf("duplicate tool %q: already registered by provider %q, re-registered by %q", t.Name, prev.provider, p.Name()),
				errorsx.ReasonDuplicate)
		}
		b.tools[t.Name] = registration{
			provider:    p.Name(),
			description: t.Description,
			handler:     t.Handler,
		}
		b.names = append(b.names, t.Name)
	}
	return nil
}

// Dispatch invokes a tool by name. It always returns an envelope: an
// unknown name or a provider-side failure becomes the error variant, a
// successful payload passes through untransformed. A failing call never
// disturbs the registry for subsequent calls.
func (b *Bridge) Dispatch(name string, args map[string]any) Result {
	reg, ok := b.tools[name]
	if !ok {
		msg := fmt.Sprintf("Tool '%s' not found. Available: [%s]", name, strings.Join(b.names, ", "))
		b.log.Warn("tool_unknown",
			slog.String("tool_name", name),
			slog.String("reason", string(errorsx.ReasonUnknownTool)))
		return Failure(msg)
	}

	callID := uuid.NewString()
	b.log.Info("tool_call",
		slog.String("tool_name", name),
		slog.String("provider", reg.provider),
		slog.String("call_id", callID),
		slog.Any("args", redact.Args(args)))

	payload, err := b.invoke(reg.handler, name, callID, args)
	if err != nil {
		msg := fmt.Sprintf("Tool '%s' failed: %s", name, err.Error())
		err = errorsx.Wrap(err, errorsx.ReasonToolFailed)
		b.log.Error("tool_failed",
			slog.String("tool_name", name),
			slog.String("provider", reg.provider),
			slog.String("call_id", callID),
			slog.String("reason", string(errorsx.Reason(err))),
			slog.String("error", err.Error()))
		return Failure(msg)
	}

	b.log.Info("tool_done",
		slog.String("tool_name", name),
		slog.String("call_id", callID))
	return Success(payload)
}

// invoke shields the bridge from provider panics; the stack goes to the
// operator log only, the caller sees the envelope.
func (b *Bridge) invoke(h HandlerFunc, name, callID string, args map[string]any) (payload map[string]any, err error) {
	defer func() {
		if r := recover(); r != nil {
			b.log.Error("tool_panic",
				slog.String("tool_name", name),
				slog.String("call_id", callID),
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())))
			err = errorsx.New(fmt.Sprint(r), errorsx.ReasonToolPanic)
		}
	}()
	return h(args)
}

// ListTools returns the registered tool names in registration order.
func (b *Bridge) ListTools() []string {
	out := make([]string, len(b.names))
	copy(out, b.names)
	return out
}

// DescribeTools returns the usage description for every registered tool.
// It is derived from the registry itself, so membership always matches
// ListTools regardless of which optional providers made it in.
func (b *Bridge) DescribeTools() map[string]string {
	out := make(map[string]string, len(b.tools))
	for name, reg := range b.tools {
		out[name] = reg.description
	}
	return out
}

// Size returns the number of registered tools.
func (b *Bridge) Size() int {
	return len(b.names)
}
