package impl

import (
	"context"

	"github.com/sebvsnk/Base-E-commerce/internal/domain/entity"
	"github.com/sebvsnk/Base-E-commerce/internal/domain/repository"

	"github.com/pkg/errors"
)

// cancelAndRestock flips an order to CANCELLED and returns its units to
// stock, all inside one transaction. The conditional status flip is the
// idempotency guard: only the caller that actually performed the transition
// restocks, so concurrent cancels and repeated payment callbacks can never
// return the same units twice.
func cancelAndRestock(
	ctx context.Context,
	txManager repository.TransactionManager,
	order *entity.Order,
	paymentStatus *entity.PaymentStatus,
) (bool, error) {
	var transitioned bool

	err := txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()
		productRepo := repoFactory.NewProductRepository()

		var err error
		transitioned, err = orderRepo.MarkCancelled(ctx, order.ID, paymentStatus)
		if err != nil {
			return errors.Wrap(err, "failed to mark order cancelled")
		}
		if !transitioned {
			return nil
		}

		for _, item := range order.Items {
			if err := productRepo.IncrementStock(ctx, item.ProductID, item.Qty); err != nil {
				return errors.Wrap(err, "failed to restock order item")
			}
		}

		return nil
	})
	if err != nil {
		return false, errors.Wrap(err, "failed to execute cancel transaction")
	}

	return transitioned, nil
}
