package taskqueue

import (
	"context"
	"encoding/json"

	"dayboard/core/config"
	"dayboard/core/logger"

	"github.com/hibiken/asynq"
)

const (
	TypeActivationEmail = "email:activation"
	TypeResetEmail      = "email:reset"
)

// EmailPayload is the task payload for both outbound email types.
type EmailPayload struct {
	To    string `json:"to"`
	Name  string `json:"name"`
	Token string `json:"token"`
}

// Client enqueues background tasks; HTTP handlers never block on mail
// delivery.
type Client struct {
	inner *asynq.Client
}

func NewClient(cfg config.RedisConfig) *Client {
	return &Client{
		inner: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
	}
}

func (c *Client) Close() error {
	return c.inner.Close()
}

func (c *Client) EnqueueActivationEmail(ctx context.Context, p EmailPayload) error {
	return c.enqueue(ctx, TypeActivationEmail, p)
}

func (c *Client) EnqueueResetEmail(ctx context.Context, p EmailPayload) error {
	return c.enqueue(ctx, TypeResetEmail, p)
}

func (c *Client) enqueue(ctx context.Context, taskType string, p EmailPayload) error {
	payload, err := json.Marshal(p)
	if err != nil {
		return err
	}
	task := asynq.NewTask(taskType, payload, asynq.MaxRetry(3))
	info, err := c.inner.EnqueueContext(ctx, task)
	if err != nil {
		logger.Error("TaskQueue:Enqueue:Error:", err)
		return err
	}
	logger.Info("TaskQueue:Enqueued", "type", taskType, "id", info.ID, "queue", info.Queue)
	return nil
}

// StartWorker runs the asynq server that delivers queued emails. It
// returns immediately; the server runs on its own goroutines.
func StartWorker(cfg config.RedisConfig, mailer *Mailer) *asynq.Server {
	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		},
		asynq.Config{Concurrency: 2},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeActivationEmail, func(ctx context.Context, t *asynq.Task) error {
		var p EmailPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			return err
		}
		return mailer.SendActivation(p)
	})
	mux.HandleFunc(TypeResetEmail, func(ctx context.Context, t *asynq.Task) error {
		var p EmailPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			return err
		}
		return mailer.SendReset(p)
	})

	go func() {
		if err := srv.Run(mux); err != nil {
			logger.Error("TaskQueue:Worker:Error:", err)
		}
	}()
	return srv
}
