// Package expiry помечает карты с истекшим сроком действия в фоновом режиме.
package expiry

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	defaultServiceTimeout         = 3 * time.Second
	defaultInterval               = time.Minute
	defaultLimitPerIteration uint = 100
)

// Servicer часть сервисного слоя карт, нужная процессору.
type Servicer interface {
	MarkExpired(ctx context.Context, limit uint) ([]int64, error)
}

// Processor периодически переводит просроченные карты в статус EXPIRED.
type Processor struct {
	svs               Servicer
	l                 *logrus.Entry
	interval          time.Duration
	limitPerIteration uint
}

// New создает новый экземпляр процессора.
func New(svs Servicer, l *logrus.Logger) *Processor {
	loggerEntry := l.WithFields(logrus.Fields{
		"component": "expiry",
		"module":    "processor",
	})

	return &Processor{
		svs:               svs,
		l:                 loggerEntry,
		interval:          defaultInterval,
		limitPerIteration: defaultLimitPerIteration,
	}
}

// SetInterval устанавливает паузу между итерациями обработчика.
func (p *Processor) SetInterval(interval time.Duration) *Processor {
	p.interval = interval
	return p
}

// SetLimitPerIteration устанавливает кол-во карт, обрабатываемых за одну итерацию.
func (p *Processor) SetLimitPerIteration(limit uint) *Processor {
	p.limitPerIteration = limit
	return p
}

// Run запускает обработку в бесконечном цикле до отмены контекста.
//
// Каждая итерация просит сервисный слой пометить не более limitPerIteration
// просроченных карт. Если лимит выбран полностью, следующая итерация стартует
// сразу, иначе процессор спит interval.
func (p *Processor) Run(ctx context.Context) {
	p.l.WithFields(logrus.Fields{
		"interval":          p.interval,
		"limitPerIteration": p.limitPerIteration,
	}).Info("Starting")

	for {
		marked, err := p.process(ctx)
		if err != nil {
			p.l.WithError(err).Error("process error")
		}

		if err == nil && uint(len(marked)) == p.limitPerIteration {
			// Лимит выбран целиком, вероятно есть еще просроченные карты.
			continue
		}

		select {
		case <-ctx.Done():
			p.l.Info("Got stop signal, exiting...")
			return
		case <-time.After(p.interval):
		}
	}
}

func (p *Processor) process(ctx context.Context) ([]int64, error) {
	reqCtx, cancel := context.WithTimeout(ctx, defaultServiceTimeout)
	defer cancel()

	marked, err := p.svs.MarkExpired(reqCtx, p.limitPerIteration)
	if err != nil {
		return nil, err
	}
	if len(marked) > 0 {
		p.l.WithField("cardIDs", marked).Info("Marked expired cards")
	}
	return marked, nil
}
