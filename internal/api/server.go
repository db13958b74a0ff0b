package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/nikmy/meetslot/internal/calendar"
	"github.com/nikmy/meetslot/internal/finder"
	"github.com/nikmy/meetslot/internal/meeting"
	"github.com/nikmy/meetslot/pkg/errors"
	"github.com/nikmy/meetslot/pkg/logger"
)

const headerRequestID = "X-Request-Id"

func NewServer(cfg Config, log logger.Logger, resolver resolver, source calendar.Source) Server {
	serveLog := log.With("api_http_server")

	fiberCfg := fiber.Config{
		ReadTimeout:             cfg.HTTP.ReadTimeout,
		WriteTimeout:            cfg.HTTP.WriteTimeout,
		IdleTimeout:             cfg.HTTP.IdleTimeout,
		DisableStartupMessage:   true,
		EnableTrustedProxyCheck: true,
		ProxyHeader:             cfg.Proxy.Header,
		TrustedProxies:          cfg.Proxy.Trusted,
		RequestMethods:          []string{fiber.MethodGet, fiber.MethodPost},
	}

	fiberCfg.ErrorHandler = func(c *fiber.Ctx, err error) error {
		serveLog.Errorf("request %s: %s", c.Locals(headerRequestID), errors.WrapFail(err, "handle http request"))
		return c.Status(http.StatusInternalServerError).JSON(errorBody("internal error"))
	}

	s := &server{
		resolver: resolver,
		source:   source,
		http:     fiber.New(fiberCfg),
		addr:     cfg.HTTP.Addr,
		timeout:  cfg.QueryTimeout,
		log:      serveLog,
	}

	s.setupRoutes()

	return s
}

type server struct {
	resolver resolver
	source   calendar.Source
	http     *fiber.App
	addr     string
	timeout  time.Duration
	log      logger.Logger
}

func (s *server) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() { errCh <- s.http.Listen(s.addr) }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return errors.Error("serve context done")
	}
}

func (s *server) Shutdown(ctx context.Context) error {
	var errs []error

	err := s.http.ShutdownWithContext(ctx)
	if err != nil {
		errs = append(errs, errors.WrapFail(err, "shutdown http server"))
	}

	err = s.source.Close(ctx)
	if err != nil {
		errs = append(errs, errors.WrapFail(err, "close calendar source"))
	}

	return errors.Collapse(errs)
}

func (s *server) setupRoutes() {
	s.http.Use(s.withRequestID)
	s.http.Post("/query", s.handleQuery)
	s.http.Post("/slots", s.handleSlots)
}

func (s *server) withRequestID(c *fiber.Ctx) error {
	id := c.Get(headerRequestID)
	if id == "" {
		id = uuid.NewString()
	}

	c.Set(headerRequestID, id)
	c.Locals(headerRequestID, id)
	return c.Next()
}

type queryRequest struct {
	meeting.Request
	Events []meeting.Event `json:"events"`
}

func (s *server) handleQuery(c *fiber.Ctx) error {
	var req queryRequest
	err := c.BodyParser(&req)
	if err != nil {
		s.log.Warn(errors.WrapFail(err, "unmarshal query payload"))
		return s.sendError(c, http.StatusBadRequest, "bad json")
	}

	return s.resolve(c, req.Events, req.Request)
}

func (s *server) handleSlots(c *fiber.Ctx) error {
	day, err := time.Parse(time.DateOnly, c.Query("day"))
	if err != nil {
		s.log.Warn(errors.WrapFail(err, "parse \"day\" param"))
		return s.sendError(c, http.StatusBadRequest, "\"day\" param must look like 2006-01-02")
	}

	var req meeting.Request
	err = c.BodyParser(&req)
	if err != nil {
		s.log.Warn(errors.WrapFail(err, "unmarshal slots payload"))
		return s.sendError(c, http.StatusBadRequest, "bad json")
	}

	mandatory, optional := req.Normalize()
	events, err := s.source.Events(c.UserContext(), day, append(mandatory, optional...))
	if err != nil {
		return errors.WrapFailf(err, "load events of %s", day.Format(time.DateOnly))
	}

	return s.resolve(c, events, req)
}

func (s *server) resolve(c *fiber.Ctx, events []meeting.Event, req meeting.Request) error {
	ctx := c.UserContext()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	res, err := s.resolver.Resolve(ctx, events, req)
	switch {
	case errors.Is(err, finder.ErrInvalidRequest):
		s.log.Info(err)
		return s.sendError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, finder.ErrSearchBudget), errors.Is(err, context.DeadlineExceeded):
		s.log.Warn(err)
		return s.sendError(c, http.StatusServiceUnavailable, "too many optional attendees to search through")
	case err != nil:
		return errors.WrapFail(err, "resolve meeting request")
	}

	return c.Status(http.StatusOK).JSON(res)
}

func (s *server) sendError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(errorBody(msg))
}

func errorBody(msg string) map[string]string {
	return map[string]string{"status": "ERROR", "message": msg}
}
