package repository_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/gameroom/backoffice/internal/adapters/mongo/repository"
	"github.com/gameroom/backoffice/internal/core/domain"
	"github.com/gameroom/backoffice/internal/core/port"
	"github.com/gameroom/backoffice/internal/core/serviceerrors"
)

func newTestProduct(name string, stock int, forSale bool) *domain.Product {
	return domain.NewProduct(name, stock, domain.NewAmountFromCents(50000), domain.NewAmountFromCents(100000), time.Now(), "", forSale, "")
}

func createTestProduct(t *testing.T, repo port.ProductPort, stock int) *domain.Product {
	t.Helper()
	product := newTestProduct("Test Product", stock, true)
	if err := repo.Create(context.Background(), product); err != nil {
		t.Fatalf("setup: create product failed: %v", err)
	}
	return product
}

func TestProductRepository_Create(t *testing.T) {
	repo := repository.NewProductRepository(testDB)
	ctx := context.Background()

	t.Run("creates product and assigns ID", func(t *testing.T) {
		product := newTestProduct("Control Play 5", 10, true)

		err := repo.Create(ctx, product)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if product.ID == "" {
			t.Fatal("expected product ID to be assigned")
		}
		if len(string(product.ID)) != 24 {
			t.Fatalf("expected 24-char hex ID, got %q", product.ID)
		}
	})
}

func TestProductRepository_GetByID(t *testing.T) {
	repo := repository.NewProductRepository(testDB)
	ctx := context.Background()

	t.Run("returns product by ID", func(t *testing.T) {
		created := createTestProduct(t, repo, 50)

		found, err := repo.GetByID(ctx, created.ID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if found.ID != created.ID {
			t.Fatalf("expected id %s, got %s", created.ID, found.ID)
		}
		if found.Name != created.Name {
			t.Fatalf("expected name %q, got %q", created.Name, found.Name)
		}
		if found.SalePrice != created.SalePrice {
			t.Fatalf("expected sale price %d, got %d", created.SalePrice, found.SalePrice)
		}
		if found.Stock != created.Stock {
			t.Fatalf("expected stock %d, got %d", created.Stock, found.Stock)
		}
		if !found.ForSale {
			t.Fatal("expected product to be for sale")
		}
	})

	t.Run("returns not found for non-existing ID", func(t *testing.T) {
		_, err := repo.GetByID(ctx, "aabbccddee112233aabbccdd")
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected KindNotFound, got %v", err)
		}
	})

	t.Run("returns error for invalid ID", func(t *testing.T) {
		_, err := repo.GetByID(ctx, "bad-id")
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !serviceerrors.IsOfKind(err, serviceerrors.KindInvalidRequest) {
			t.Fatalf("expected KindInvalidRequest, got %v", err)
		}
	})
}

func TestProductRepository_GetAll(t *testing.T) {
	// Use a fresh database to avoid pollution from other tests
	freshDB := testClient.Database("test_product_getall")
	repo := repository.NewProductRepository(freshDB)
	ctx := context.Background()

	t.Run("returns empty list when no products", func(t *testing.T) {
		products, err := repo.GetAll(ctx, port.ProductFilter{})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(products) != 0 {
			t.Fatalf("expected 0 products, got %d", len(products))
		}
	})

	t.Run("filters by for-sale flag", func(t *testing.T) {
		forSale := newTestProduct("Refresco", 24, true)
		notForSale := newTestProduct("Control de repuesto", 4, false)
		_ = repo.Create(ctx, forSale)
		_ = repo.Create(ctx, notForSale)

		all, err := repo.GetAll(ctx, port.ProductFilter{})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(all) != 2 {
			t.Fatalf("expected 2 products, got %d", len(all))
		}

		onlyForSale := true
		filtered, err := repo.GetAll(ctx, port.ProductFilter{ForSale: &onlyForSale})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(filtered) != 1 {
			t.Fatalf("expected 1 product, got %d", len(filtered))
		}
		if filtered[0].Name != "Refresco" {
			t.Fatalf("expected Refresco, got %q", filtered[0].Name)
		}
	})
}

func TestProductRepository_Update(t *testing.T) {
	repo := repository.NewProductRepository(testDB)
	ctx := context.Background()

	t.Run("persists field changes", func(t *testing.T) {
		created := createTestProduct(t, repo, 10)
		created.Name = "Renamed"
		created.SalePrice = domain.NewAmountFromCents(120000)
		created.ForSale = false

		if err := repo.Update(ctx, created); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		found, _ := repo.GetByID(ctx, created.ID)
		if found.Name != "Renamed" {
			t.Fatalf("expected renamed product, got %q", found.Name)
		}
		if found.SalePrice != domain.NewAmountFromCents(120000) {
			t.Fatalf("expected updated price, got %d", found.SalePrice)
		}
		if found.ForSale {
			t.Fatal("expected product to be withdrawn from sale")
		}
	})

	t.Run("returns not found for non-existing product", func(t *testing.T) {
		ghost := newTestProduct("Ghost", 1, true)
		ghost.ID = "aabbccddee112233aabbccdd"

		err := repo.Update(ctx, ghost)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected KindNotFound, got %v", err)
		}
	})
}

func TestProductRepository_DeductStock(t *testing.T) {
	repo := repository.NewProductRepository(testDB)
	ctx := context.Background()

	t.Run("deducts stock successfully", func(t *testing.T) {
		product := createTestProduct(t, repo, 10)

		err := repo.DeductStock(ctx, product.ID, 3)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		updated, _ := repo.GetByID(ctx, product.ID)
		if updated.Stock != 7 {
			t.Fatalf("expected stock 7, got %d", updated.Stock)
		}
	})

	t.Run("fails when insufficient stock", func(t *testing.T) {
		product := createTestProduct(t, repo, 2)

		err := repo.DeductStock(ctx, product.ID, 5)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !serviceerrors.IsOfKind(err, serviceerrors.KindUnprocessableEntity) {
			t.Fatalf("expected KindUnprocessableEntity, got %v", err)
		}

		// Stock should remain unchanged
		unchanged, _ := repo.GetByID(ctx, product.ID)
		if unchanged.Stock != 2 {
			t.Fatalf("expected stock 2 (unchanged), got %d", unchanged.Stock)
		}
	})

	t.Run("deducts exact stock to zero", func(t *testing.T) {
		product := createTestProduct(t, repo, 5)

		err := repo.DeductStock(ctx, product.ID, 5)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		updated, _ := repo.GetByID(ctx, product.ID)
		if updated.Stock != 0 {
			t.Fatalf("expected stock 0, got %d", updated.Stock)
		}
	})

	t.Run("fails for non-existing product", func(t *testing.T) {
		err := repo.DeductStock(ctx, "aabbccddee112233aabbccdd", 1)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !serviceerrors.IsOfKind(err, serviceerrors.KindUnprocessableEntity) {
			t.Fatalf("expected KindUnprocessableEntity, got %v", err)
		}
	})

	t.Run("fails for invalid ID", func(t *testing.T) {
		err := repo.DeductStock(ctx, "bad-id", 1)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !serviceerrors.IsOfKind(err, serviceerrors.KindInvalidRequest) {
			t.Fatalf("expected KindInvalidRequest, got %v", err)
		}
	})

	t.Run("concurrent deductions never drive stock negative", func(t *testing.T) {
		product := createTestProduct(t, repo, 10)

		var wg sync.WaitGroup
		failures := make(chan error, 20)
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if err := repo.DeductStock(ctx, product.ID, 1); err != nil {
					failures <- err
				}
			}()
		}
		wg.Wait()
		close(failures)

		rejected := 0
		for err := range failures {
			if !serviceerrors.IsOfKind(err, serviceerrors.KindUnprocessableEntity) {
				t.Fatalf("expected KindUnprocessableEntity, got %v", err)
			}
			rejected++
		}
		if rejected != 10 {
			t.Fatalf("expected 10 rejected deductions, got %d", rejected)
		}

		final, _ := repo.GetByID(ctx, product.ID)
		if final.Stock != 0 {
			t.Fatalf("expected stock 0, got %d", final.Stock)
		}
	})
}

func TestProductRepository_Delete(t *testing.T) {
	repo := repository.NewProductRepository(testDB)
	ctx := context.Background()

	t.Run("deletes existing product", func(t *testing.T) {
		product := createTestProduct(t, repo, 1)

		if err := repo.Delete(ctx, product.ID); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		_, err := repo.GetByID(ctx, product.ID)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected KindNotFound, got %v", err)
		}
	})

	t.Run("returns not found for non-existing product", func(t *testing.T) {
		err := repo.Delete(ctx, "aabbccddee112233aabbccdd")
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected KindNotFound, got %v", err)
		}
	})
}
