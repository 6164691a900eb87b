// Package events - Test pub-sub sự kiện thay đổi dữ liệu.
package events

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEmitDataChanged_DeliversToAllHandlers(t *testing.T) {
	var mu sync.Mutex
	var received []DataChangeEvent
	done := make(chan struct{}, 2)

	for i := 0; i < 2; i++ {
		OnDataChanged(func(ctx context.Context, e DataChangeEvent) {
			mu.Lock()
			received = append(received, e)
			mu.Unlock()
			done <- struct{}{}
		})
	}

	EmitDataChanged(context.Background(), DataChangeEvent{
		CollectionName: "words",
		Operation:      OpInsert,
	})

	for i := 0; i < 2; i++ {
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("handler không nhận được event trong 2s")
		}
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, received, 2, "mọi handler đã đăng ký đều phải nhận event")
	assert.Equal(t, "words", received[0].CollectionName)
	assert.Equal(t, OpInsert, received[0].Operation)
}

func TestEmitDataChanged_PanickingHandlerDoesNotAffectOthers(t *testing.T) {
	done := make(chan struct{}, 1)

	OnDataChanged(func(ctx context.Context, e DataChangeEvent) {
		panic("handler hỏng")
	})
	OnDataChanged(func(ctx context.Context, e DataChangeEvent) {
		done <- struct{}{}
	})

	EmitDataChanged(context.Background(), DataChangeEvent{
		CollectionName: "roles",
		Operation:      OpDelete,
	})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("handler phía sau phải vẫn chạy khi handler khác panic")
	}
}
