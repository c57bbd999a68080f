// Package localtransport provides an in-process MCP transport. It lets a
// caller drive a server through the full JSON-RPC dispatch path without a
// stdio pipe, which is how the assembled tool surface is exercised in tests.
package localtransport

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/metoro-io/mcp-golang/transport"
)

// Transport dispatches JSON-RPC messages directly to the server's message
// handler and hands the response back to the caller of HandleMessage.
type Transport struct {
	mu             sync.RWMutex
	messageHandler func(ctx context.Context, message *transport.BaseJsonRpcMessage)
	closeHandler   func()
	responses      map[int64]chan *transport.BaseJsonRpcMessage
	nextKey        int64
}

// New returns an unconnected local transport.
func New() *Transport {
	return &Transport{
		responses: make(map[int64]chan *transport.BaseJsonRpcMessage),
	}
}

// Start is a no-op; the local transport has no connection to establish.
func (t *Transport) Start(ctx context.Context) error {
	return nil
}

// Close invokes the close handler, if any.
func (t *Transport) Close() error {
	t.mu.RLock()
	handler := t.closeHandler
	t.mu.RUnlock()
	if handler != nil {
		handler()
	}
	return nil
}

// SetErrorHandler is a no-op: errors surface directly from HandleMessage.
func (t *Transport) SetErrorHandler(handler func(error)) {
}

// SetCloseHandler sets the callback invoked by Close.
func (t *Transport) SetCloseHandler(handler func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closeHandler = handler
}

// SetMessageHandler sets the callback receiving inbound messages.
func (t *Transport) SetMessageHandler(handler func(ctx context.Context, message *transport.BaseJsonRpcMessage)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.messageHandler = handler
}

// Send routes the server's response to the HandleMessage call waiting on
// the matching request id.
func (t *Transport) Send(ctx context.Context, message *transport.BaseJsonRpcMessage) error {
	key := int64(message.JsonRpcResponse.Id)
	t.mu.RLock()
	ch := t.responses[key]
	t.mu.RUnlock()
	if ch == nil {
		return errors.Errorf("no pending request for id: %d", key)
	}
	ch <- message
	return nil
}

// HandleMessage submits a raw JSON-RPC request or notification to the server
// and blocks until the response arrives. Notifications return an empty
// response immediately.
func (t *Transport) HandleMessage(ctx context.Context, body []byte) (*transport.BaseJsonRpcMessage, error) {
	t.mu.RLock()
	handler := t.messageHandler
	t.mu.RUnlock()
	if handler == nil {
		return nil, errors.New("transport is not connected")
	}

	var request transport.BaseJSONRPCRequest
	if err := json.Unmarshal(body, &request); err != nil {
		var notification transport.BaseJSONRPCNotification
		if err := json.Unmarshal(body, &notification); err != nil {
			return nil, errors.WithMessage(err, "failed to unmarshal message")
		}
		handler(ctx, transport.NewBaseMessageNotification(&notification))
		return &transport.BaseJsonRpcMessage{
			Type: transport.BaseMessageTypeJSONRPCResponseType,
		}, nil
	}

	// The caller's request id is remapped to a private key so that
	// concurrent calls with colliding ids do not cross wires.
	ch := make(chan *transport.BaseJsonRpcMessage, 1)
	t.mu.Lock()
	t.nextKey++
	key := t.nextKey
	t.responses[key] = ch
	t.mu.Unlock()

	callerID := request.Id
	request.Id = transport.RequestId(key)
	handler(ctx, transport.NewBaseMessageRequest(&request))

	var response *transport.BaseJsonRpcMessage
	select {
	case response = <-ch:
	case <-ctx.Done():
		t.mu.Lock()
		delete(t.responses, key)
		t.mu.Unlock()
		return nil, errors.WithStack(ctx.Err())
	}

	t.mu.Lock()
	delete(t.responses, key)
	t.mu.Unlock()

	response.JsonRpcResponse.Id = callerID
	return response, nil
}
