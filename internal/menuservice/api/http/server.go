package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"smart-menu/internal/menuservice/api/http/handle"
	"smart-menu/internal/menuservice/app/core"
	"smart-menu/internal/menuservice/app/services"
	"smart-menu/internal/mylogger"
)

type Server struct {
	mux         *http.ServeMux
	srv         *http.Server
	params      *core.ServiceParams
	menuService *services.MenuService
	mylog       mylogger.Logger
	ctx         context.Context
	mu          sync.Mutex
}

func NewServer(ctx context.Context, params *core.ServiceParams, menuService *services.MenuService, mylog mylogger.Logger) *Server {
	return &Server{
		ctx:         ctx,
		params:      params,
		menuService: menuService,
		mylog:       mylog,
		mux:         http.NewServeMux(),
	}
}

// Run initializes routes and starts listening. It returns when the
// server stops.
func (s *Server) Run() error {
	mylog := s.mylog.Action("server_started")

	s.Configure()

	s.mu.Lock()
	s.srv = &http.Server{
		Addr:    fmt.Sprintf(":%d", s.params.Port),
		Handler: s.mux,
	}
	s.mu.Unlock()

	mylog.Info("server is running", "port", s.params.Port)
	return s.startHTTPServer()
}

// Stop provides a programmatic graceful shutdown.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mylog.Action("graceful_shutdown_started").Info("Shutting down HTTP server...")

	if s.srv != nil {
		shutdownCtx, cancel := context.WithTimeout(ctx, core.WaitTime*time.Second)
		defer cancel()

		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			s.mylog.Action("graceful_shutdown_failed").Error("Failed to shut down HTTP server gracefully", err)
			return fmt.Errorf("http server shutdown: %w", err)
		}
	}

	s.mylog.Action("graceful_shutdown_completed").Info("HTTP server shut down gracefully")
	return nil
}

func (s *Server) startHTTPServer() error {
	errCh := make(chan error, 1)

	go func() {
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		} else {
			errCh <- nil
		}
	}()

	select {
	case <-s.ctx.Done():
		return nil
	case err := <-errCh:
		return err
	}
}

// Configure registers the HTTP routes for the menu, cart and order APIs.
func (s *Server) Configure() {
	menuHandler := handle.NewMenuHandler(s.menuService, s.mylog)
	cartHandler := handle.NewCartHandler(s.menuService, s.mylog)
	orderHandler := handle.NewOrderHandler(s.menuService, s.mylog)

	s.mux.HandleFunc("GET /menu", menuHandler.Menu())
	s.mux.HandleFunc("GET /recommendations", menuHandler.Recommendations())

	s.mux.HandleFunc("POST /carts", cartHandler.CreateCart())
	s.mux.HandleFunc("GET /carts/{cart_id}", cartHandler.GetCart())
	s.mux.HandleFunc("POST /carts/{cart_id}/items", cartHandler.AddItem())
	s.mux.HandleFunc("PUT /carts/{cart_id}/items/{item_id}", cartHandler.UpdateQuantity())
	s.mux.HandleFunc("DELETE /carts/{cart_id}/items/{item_id}", cartHandler.RemoveItem())
	s.mux.HandleFunc("DELETE /carts/{cart_id}", cartHandler.ClearCart())
	s.mux.HandleFunc("POST /carts/{cart_id}/checkout", cartHandler.Checkout())

	s.mux.HandleFunc("GET /orders", orderHandler.ListOrders())
	s.mux.HandleFunc("GET /orders/{order_id}", orderHandler.GetOrder())
	s.mux.HandleFunc("POST /orders/{order_id}/status", orderHandler.AdvanceStatus())
}
