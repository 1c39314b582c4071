// interceptors предоставляет набор gRPC-интерсепторов для серверной стороны.
package interceptors

import (
	"context"
	"time"

	"google.golang.org/grpc"
)

// WithTimeout возвращает unary-интерсептор, который ограничивает время обработки
// вызова значением d.
//
// Контракт:
//  1. d <= 0 — контекст передаётся в handler как есть;
//  2. у входящего ctx уже есть дедлайн (его задал клиент) — он сохраняется;
//  3. иначе handler получает ctx с дедлайном now+d, cancel вызывается по выходу.
//
// Обработчик, упёршийся в дедлайн, обычно возвращает context.DeadlineExceeded,
// который транспорт переводит в codes.DeadlineExceeded.
func WithTimeout(d time.Duration) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if d <= 0 {
			return handler(ctx, req)
		}

		if _, ok := ctx.Deadline(); ok {
			return handler(ctx, req)
		}

		ctx, cancel := context.WithTimeout(ctx, d)
		defer cancel()

		return handler(ctx, req)
	}
}
