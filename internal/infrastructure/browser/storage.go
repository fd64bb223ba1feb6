package browser

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-rod/rod"

	"github.com/bnema/pinboard/internal/application/port"
	"github.com/bnema/pinboard/internal/domain/entity"
	"github.com/bnema/pinboard/internal/logging"
)

const (
	dumpStorageJS = `(store) => {
		const s = window[store];
		const out = {};
		for (let i = 0; i < s.length; i++) {
			const k = s.key(i);
			out[k] = s.getItem(k);
		}
		return JSON.stringify(out);
	}`

	setItemJS = `(store, key, value) => {
		window[store].setItem(key, value);
		return true;
	}`

	removeItemJS = `(store, key) => {
		window[store].removeItem(key);
		return true;
	}`

	readyStateJS = `() => document.readyState`
)

func storageObject(t entity.PropertyType) (string, error) {
	switch t {
	case entity.PropertyTypeLocalStorage:
		return "localStorage", nil
	case entity.PropertyTypeSessionStorage:
		return "sessionStorage", nil
	}
	return "", fmt.Errorf("%q is not a storage type", t)
}

// LoadStorageByType dumps one web storage area of the tab.
func (h *Host) LoadStorageByType(ctx context.Context, tab *entity.Tab, t entity.PropertyType) (map[string]any, error) {
	store, err := storageObject(t)
	if err != nil {
		return nil, err
	}
	p, err := h.page(ctx, tab)
	if err != nil {
		return nil, err
	}

	res, err := p.Evaluate(&rod.EvalOptions{
		JS:           dumpStorageJS,
		JSArgs:       []interface{}{store},
		ByValue:      true,
		AwaitPromise: true,
	})
	if err != nil {
		return nil, classify(fmt.Errorf("failed to read %s: %w", store, err))
	}
	if res == nil || res.Value.Nil() {
		return map[string]any{}, nil
	}

	items, err := decodeStorageDump(res.Value.Str())
	if err != nil {
		return nil, err
	}
	logging.FromContext(ctx).Debug().Str("store", store).Int("count", len(items)).Msg("storage loaded")
	return items, nil
}

// SetItem writes one storage item.
func (h *Host) SetItem(ctx context.Context, tab *entity.Tab, t entity.PropertyType, key, value string) (entity.OperationResult, error) {
	return h.evalMutation(ctx, tab, t, setItemJS, key, value)
}

// RemoveItem deletes one storage item.
func (h *Host) RemoveItem(ctx context.Context, tab *entity.Tab, t entity.PropertyType, key string) (entity.OperationResult, error) {
	return h.evalMutation(ctx, tab, t, removeItemJS, key)
}

func (h *Host) evalMutation(ctx context.Context, tab *entity.Tab, t entity.PropertyType, js string, args ...interface{}) (entity.OperationResult, error) {
	store, err := storageObject(t)
	if err != nil {
		return entity.Failed(err), err
	}
	p, err := h.page(ctx, tab)
	if err != nil {
		return entity.Failed(err), err
	}

	_, err = p.Evaluate(&rod.EvalOptions{
		JS:           js,
		JSArgs:       append([]interface{}{store}, args...),
		ByValue:      true,
		AwaitPromise: true,
		UserGesture:  true,
	})
	if err != nil {
		err = classify(fmt.Errorf("failed to update %s: %w", store, err))
		return entity.Failed(err), err
	}
	return entity.OK(), nil
}

// Ping reports whether the tab can evaluate scripts and has parsed its
// document.
func (h *Host) Ping(ctx context.Context, tab *entity.Tab) (port.ProbeResult, error) {
	p, err := h.page(ctx, tab)
	if err != nil {
		return port.ProbeResult{}, err
	}

	res, err := p.Evaluate(&rod.EvalOptions{JS: readyStateJS, ByValue: true})
	if err != nil {
		return port.ProbeResult{}, classify(fmt.Errorf("failed to probe page: %w", err))
	}

	state := res.Value.Str()
	return port.ProbeResult{Success: true, Ready: state == "interactive" || state == "complete"}, nil
}

// decodeStorageDump parses the JSON object produced by dumpStorageJS.
// Values stay the strings the page stored; JSON detection and indenting
// happen at display time so digits and key order survive.
func decodeStorageDump(raw string) (map[string]any, error) {
	var flat map[string]string
	if err := json.Unmarshal([]byte(raw), &flat); err != nil {
		return nil, fmt.Errorf("failed to decode storage dump: %w", err)
	}

	items := make(map[string]any, len(flat))
	for k, v := range flat {
		items[k] = v
	}
	return items, nil
}
