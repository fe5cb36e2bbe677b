package connector

import (
	"context"
	"fmt"

	"github.com/coder/websocket"

	"github.com/BaSui01/flownet/block"
)

// WebSocketSource returns a source opener that dials url at run start and
// emits one text message per invocation as a string. A normal close from the
// peer is end-of-stream; any other read error is a fault.
func WebSocketSource(ctx context.Context, url string) block.SourceOpener {
	return func() (block.SourceFunc, error) {
		conn, _, err := websocket.Dial(ctx, url, nil)
		if err != nil {
			return nil, fmt.Errorf("websocket dial %s: %w", url, err)
		}
		return func() (any, error) {
			_, data, err := conn.Read(ctx)
			if err != nil {
				_ = conn.CloseNow()
				if websocket.CloseStatus(err) == websocket.StatusNormalClosure {
					return nil, nil
				}
				return nil, fmt.Errorf("websocket read %s: %w", url, err)
			}
			return string(data), nil
		}, nil
	}
}
