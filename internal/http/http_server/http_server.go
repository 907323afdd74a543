package http_server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"eauctionbuyer/internal/http/buyerhandler"
	"eauctionbuyer/internal/services/bidflow"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abrar71/swaggerfilesv2" // swagger embed files
)

const RequestIDHeader = "X-Request-ID"

type httpServer struct {
	listenPort uint16
	srv        http.Server
	ln         net.Listener
	flow       bidflow.IBidFlowService
	ctx        context.Context
}

func NewHttpServer(ctx context.Context, listenPort uint16, flow bidflow.IBidFlowService) *httpServer {
	return &httpServer{
		listenPort: listenPort,
		flow:       flow,
		ctx:        ctx,
	}
}

// requestID echoes the caller's X-Request-ID or mints one.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

func (h *httpServer) router() *gin.Engine {
	routerEngine := gin.New()

	routerEngine.Use(requestID())
	routerEngine.Use(ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
		TimeFormat: time.RFC3339,
		UTC:        true,
		SkipPaths:  []string{"/healthz"},
		Context: func(c *gin.Context) []zap.Field {
			return []zap.Field{zap.String("request_id", c.GetString("request_id"))}
		},
	}))
	routerEngine.Use(ginzap.RecoveryWithZap(zap.L(), true))

	// Swagger UI and API specs
	routerEngine.StaticFS("/swagger-apis", http.FS(swaggerfilesv2.FS))
	routerEngine.Static("/api-specs", "api_specs")

	routerEngine.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	// REST API
	bh := buyerhandler.New(h.flow)
	bh.Register(routerEngine)

	return routerEngine
}

func (h *httpServer) Start() error {
	var err error
	listenAddr := fmt.Sprintf(":%d", h.listenPort)
	h.ln, err = net.Listen("tcp", listenAddr)
	if err != nil {
		return err
	}

	h.srv = http.Server{
		Handler:           h.router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	zap.L().Info("http_listen", zap.String("addr", h.ln.Addr().String()))
	if err := h.srv.Serve(h.ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Dispose gracefully shuts the HTTP server down.
// It waits up to 10 s for in-flight requests to finish.
func (h *httpServer) Dispose() error {
	// h.ctx is already cancelled on shutdown, so the grace period hangs off a fresh one.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(h.ctx), 10*time.Second)
	defer cancel()

	if err := h.srv.Shutdown(ctx); err != nil {
		zap.L().Error("http_dispose", zap.Error(err))
		return err
	}

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		zap.L().Error("http_dispose", zap.Error(errors.New("shutdown timed out")))
	}
	return nil
}
