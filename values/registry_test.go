package values

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
)

// countingSource wraps a StaticSource and records how many times each key
// was loaded.
type countingSource struct {
	inner *StaticSource
	err   error

	mu    sync.Mutex
	calls map[string]int
}

func newCountingSource(lists ...*ValueList) *countingSource {
	return &countingSource{
		inner: NewStaticSource(lists...),
		calls: make(map[string]int),
	}
}

func (s *countingSource) Load(ctx context.Context, key string) (*ValueList, error) {
	s.mu.Lock()
	s.calls[normalizeKey(key)]++
	s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return s.inner.Load(ctx, key)
}

func (s *countingSource) loads(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[normalizeKey(key)]
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// ----------------------------------------------------------------------------
// Registry Tests
// ----------------------------------------------------------------------------

func TestRegistryCachesAfterFirstLoad(t *testing.T) {
	ctx := context.Background()
	src := newCountingSource(
		NewValueList("estado", []string{"activo", "inactivo"}, nil),
	)
	reg := NewRegistry(src, testLogger())

	for i := 0; i < 5; i++ {
		list, err := reg.Values(ctx, "estado")
		if err != nil {
			t.Fatalf("Values(estado) error = %v", err)
		}
		if list == nil || list.Len() != 2 {
			t.Fatalf("Values(estado) = %v, want 2-value list", list)
		}
	}

	if got := src.loads("estado"); got != 1 {
		t.Errorf("source loads = %d, want 1", got)
	}
}

func TestRegistryConcurrentFirstLoad(t *testing.T) {
	ctx := context.Background()
	src := newCountingSource(
		NewValueList("estado", []string{"activo"}, nil),
	)
	reg := NewRegistry(src, testLogger())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if !reg.IsValid(ctx, "estado", "ACTIVO") {
				t.Error("IsValid(estado, ACTIVO) = false, want true")
			}
		}()
	}
	wg.Wait()

	// Concurrent first lookups share one load.
	if got := src.loads("estado"); got != 1 {
		t.Errorf("source loads = %d, want 1", got)
	}
}

func TestRegistryFallsBackToBuiltin(t *testing.T) {
	ctx := context.Background()
	src := newCountingSource() // knows no keys
	reg := NewRegistry(src, testLogger())

	// estado_notificacion is in the built-in catalog.
	if !reg.IsValid(ctx, "estado_notificacion", "notificado") {
		t.Error("IsValid(estado_notificacion, notificado) = false, want true")
	}
	if reg.IsValid(ctx, "estado_notificacion", "extraviado") {
		t.Error("IsValid(estado_notificacion, extraviado) = true, want false")
	}
}

func TestRegistryDegradedAcceptsAll(t *testing.T) {
	ctx := context.Background()
	src := newCountingSource()
	reg := NewRegistry(src, testLogger())

	// Neither the source nor the built-in catalog knows this key, so the
	// registry degrades to accept-all for it.
	if !reg.IsValid(ctx, "campo_inexistente", "cualquier cosa") {
		t.Error("degraded IsValid = false, want true")
	}

	got, ok := reg.Canonical(ctx, "campo_inexistente", "  Cualquier Cosa  ")
	if !ok {
		t.Fatal("degraded Canonical ok = false, want true")
	}
	if got != "Cualquier Cosa" {
		t.Errorf("degraded Canonical = %q, want %q", got, "Cualquier Cosa")
	}

	// The degraded outcome is cached, not retried per lookup.
	reg.IsValid(ctx, "campo_inexistente", "otra")
	if got := src.loads("campo_inexistente"); got != 1 {
		t.Errorf("source loads = %d, want 1", got)
	}
}

func TestRegistrySourceErrorFallsBack(t *testing.T) {
	ctx := context.Background()
	src := newCountingSource()
	src.err = errors.New("connection refused")
	reg := NewRegistry(src, testLogger())

	// A failing source still resolves keys the built-in catalog knows.
	if !reg.IsValid(ctx, "tipo_pqr", "queja") {
		t.Error("IsValid(tipo_pqr, queja) = false, want true")
	}
	if reg.IsValid(ctx, "tipo_pqr", "no es un tipo") {
		t.Error("IsValid(tipo_pqr, no es un tipo) = true, want false")
	}
}

func TestRegistryCanonicalUsesReplacements(t *testing.T) {
	ctx := context.Background()
	src := newCountingSource(
		NewValueList("estado_notificacion",
			[]string{"notificado", "pendiente"},
			map[string]string{"notificada": "notificado"}),
	)
	reg := NewRegistry(src, testLogger())

	got, ok := reg.Canonical(ctx, "estado_notificacion", "NOTIFICADA")
	if !ok {
		t.Fatal("Canonical ok = false, want true")
	}
	if got != "notificado" {
		t.Errorf("Canonical = %q, want %q", got, "notificado")
	}

	got, ok = reg.Replacement(ctx, "estado_notificacion", "notificada")
	if !ok || got != "notificado" {
		t.Errorf("Replacement(notificada) = %q, %v; want %q, true", got, ok, "notificado")
	}
	if _, ok := reg.Replacement(ctx, "estado_notificacion", "pendiente"); ok {
		t.Error("Replacement(pendiente) ok = true, want false for a value with no variant entry")
	}
}

func TestRegistryNilSourceServesBuiltin(t *testing.T) {
	ctx := context.Background()
	reg := NewRegistry(nil, testLogger())

	if !reg.IsValid(ctx, "medio_pago", "PSE") {
		t.Error("IsValid(medio_pago, PSE) = false, want true")
	}
	got, ok := reg.Canonical(ctx, "medio_pago", "pse")
	if !ok || got != "pago electrónico" {
		t.Errorf("Canonical(medio_pago, pse) = %q, %v, want %q, true", got, ok, "pago electrónico")
	}
}

func TestRegistryReload(t *testing.T) {
	ctx := context.Background()
	src := newCountingSource(
		NewValueList("estado", []string{"activo"}, nil),
	)
	reg := NewRegistry(src, testLogger())

	if !reg.IsValid(ctx, "estado", "activo") {
		t.Fatal("IsValid(estado, activo) = false before reload")
	}
	if reg.IsValid(ctx, "estado", "congelado") {
		t.Fatal("IsValid(estado, congelado) = true before reload")
	}

	// The catalog gains a value; Reload picks it up.
	src.inner.Add(NewValueList("estado", []string{"activo", "congelado"}, nil))
	if err := reg.Reload(ctx); err != nil {
		t.Fatalf("Reload error = %v", err)
	}
	if !reg.IsValid(ctx, "estado", "congelado") {
		t.Error("IsValid(estado, congelado) = false after reload, want true")
	}
}

func TestRegistryReloadKeepsLastGoodList(t *testing.T) {
	ctx := context.Background()
	src := newCountingSource(
		NewValueList("estado", []string{"activo"}, nil),
	)
	reg := NewRegistry(src, testLogger())

	if !reg.IsValid(ctx, "estado", "activo") {
		t.Fatal("IsValid(estado, activo) = false before reload")
	}

	// Source starts failing and the key is not in the built-in catalog.
	// The cached list must keep serving instead of regressing to
	// accept-all.
	src.err = errors.New("connection refused")
	if err := reg.Reload(ctx); err != nil {
		t.Fatalf("Reload error = %v", err)
	}
	if !reg.IsValid(ctx, "estado", "activo") {
		t.Error("IsValid(estado, activo) = false after failed reload, want true")
	}
	if reg.IsValid(ctx, "estado", "congelado") {
		t.Error("IsValid(estado, congelado) = true after failed reload, want false")
	}
}

func TestRegistryCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reg := NewRegistry(newCountingSource(), testLogger())
	if _, err := reg.Values(ctx, "estado"); !errors.Is(err, context.Canceled) {
		t.Errorf("Values with cancelled ctx error = %v, want context.Canceled", err)
	}
}
