package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func myProductsServer(t *testing.T, deletes *[]string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /products/my-products", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":"p1","name":"Camisa","price":"35000","stock":3},
			{"id":"p2","name":"Pantalón","price":"50000","stock":1},
			{"id":"p3","name":"Falda","price":"20000","stock":2}
		]`))
	})
	mux.HandleFunc("DELETE /products/{id}", func(w http.ResponseWriter, r *http.Request) {
		*deletes = append(*deletes, r.PathValue("id"))
		w.WriteHeader(http.StatusNoContent)
	})
	return httptest.NewServer(mux)
}

func TestProductList_TwoPhaseDelete(t *testing.T) {
	t.Run("staging does not mutate the visible list", func(t *testing.T) {
		var deletes []string
		server := myProductsServer(t, &deletes)
		defer server.Close()

		svc := newTestService(t, server)
		list, err := svc.Mine(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := list.StageDelete("p2"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if list.Len() != 3 {
			t.Errorf("expected 3 products after staging, got %d", list.Len())
		}
		if len(deletes) != 0 {
			t.Errorf("expected no delete call before confirm, got %v", deletes)
		}
	})

	t.Run("confirm deletes remotely and removes locally without refetch", func(t *testing.T) {
		var deletes []string
		server := myProductsServer(t, &deletes)
		defer server.Close()

		svc := newTestService(t, server)
		list, err := svc.Mine(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		product, err := list.StageDelete("p2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if product.Name != "Pantalón" {
			t.Errorf("staged the wrong product: %s", product.Name)
		}

		if err := list.ConfirmDelete(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(deletes) != 1 || deletes[0] != "p2" {
			t.Errorf("expected one delete of p2, got %v", deletes)
		}
		if list.Len() != 2 {
			t.Fatalf("expected 2 products after delete, got %d", list.Len())
		}
		for _, p := range list.Products() {
			if p.ID == "p2" {
				t.Error("p2 still present after confirmed delete")
			}
		}
	})

	t.Run("cancel abandons the staged deletion", func(t *testing.T) {
		var deletes []string
		server := myProductsServer(t, &deletes)
		defer server.Close()

		svc := newTestService(t, server)
		list, err := svc.Mine(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := list.StageDelete("p1"); err != nil {
			t.Fatal(err)
		}
		list.CancelDelete()

		if err := list.ConfirmDelete(context.Background()); err != ErrNoStagedDelete {
			t.Errorf("expected ErrNoStagedDelete, got %v", err)
		}
		if list.Len() != 3 {
			t.Errorf("expected list untouched, got %d products", list.Len())
		}
	})

	t.Run("confirm without staging is an error", func(t *testing.T) {
		var deletes []string
		server := myProductsServer(t, &deletes)
		defer server.Close()

		svc := newTestService(t, server)
		list, err := svc.Mine(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := list.ConfirmDelete(context.Background()); err != ErrNoStagedDelete {
			t.Errorf("expected ErrNoStagedDelete, got %v", err)
		}
	})

	t.Run("staging an unknown product fails", func(t *testing.T) {
		var deletes []string
		server := myProductsServer(t, &deletes)
		defer server.Close()

		svc := newTestService(t, server)
		list, err := svc.Mine(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := list.StageDelete("nope"); err != ErrNotInList {
			t.Errorf("expected ErrNotInList, got %v", err)
		}
	})
}
