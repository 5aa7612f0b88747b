package resilience

import (
	"context"

	"go.uber.org/zap"

	"studymate/pkg/logger"
)

// ServiceResilience обеспечивает отказоустойчивость вызовов внешнего сервиса.
type ServiceResilience struct {
	serviceName    string
	circuitBreaker *CircuitBreaker
	retry          *Retry
}

// NewServiceResilience создает обертку отказоустойчивости для сервиса.
func NewServiceResilience(serviceName string, retry RetryConfig, breaker CircuitBreakerConfig) *ServiceResilience {
	return &ServiceResilience{
		serviceName:    serviceName,
		circuitBreaker: NewCircuitBreaker(serviceName, breaker),
		retry:          NewRetry(serviceName, retry),
	}
}

// State возвращает состояние Circuit Breaker сервиса.
func (r *ServiceResilience) State() CircuitState {
	return r.circuitBreaker.GetState()
}

// Execute выполняет операцию с повторами под защитой Circuit Breaker.
func Execute[T any](
	ctx context.Context,
	r *ServiceResilience,
	operationName string,
	operation func(ctx context.Context) (T, error),
) (T, error) {
	log := logger.Log(ctx).With(
		zap.String("service", r.serviceName),
		zap.String("operation", operationName),
	)
	log.Debug(ctx, "executing operation with resilience")

	var result T
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.retry.Execute(ctx, func(attemptCtx context.Context) error {
			var err error
			result, err = operation(attemptCtx)
			if err != nil {
				log.Warn(ctx, "operation failed", zap.Error(err))
			}
			return err
		})
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}
