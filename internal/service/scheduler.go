package service

import (
	"context"
	"log"
	"sync"
	"time"

	"socialfeed/internal/repository"
)

// Scheduler - фоновая публикация отложенных постов. Каждый проход снимает
// scheduled_at у всех постов, чье время наступило. Видимость поста от
// прохода не зависит: предикат видимости и так считает просроченный пост
// видимым, сброс метки лишь фиксирует состояние.
type Scheduler struct {
	postRepo repository.PostRepository
	interval time.Duration

	mu      sync.Mutex
	stop    chan struct{}
	done    chan struct{}
	started bool
}

func NewScheduler(postRepo repository.PostRepository, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = 60 * time.Second
	}

	return &Scheduler{
		postRepo: postRepo,
		interval: interval,
	}
}

// Start запускает цикл публикации: один проход сразу, дальше по тикеру.
// Повторный Start ничего не делает.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		log.Println("Планировщик уже запущен")
		return
	}

	s.started = true
	s.stop = make(chan struct{})
	s.done = make(chan struct{})

	go s.run()

	log.Printf("Планировщик отложенных постов запущен (интервал %s)", s.interval)
}

// Stop останавливает тикер и дожидается выхода из цикла. Начатый проход
// не прерывается посреди записи, он просто завершается.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	close(s.stop)
	<-s.done
	s.started = false

	log.Println("Планировщик отложенных постов остановлен")
}

// run - единственная горутина планировщика, поэтому два прохода никогда не
// идут одновременно: тик, пришедший во время прохода, обработается после.
func (s *Scheduler) run() {
	defer close(s.done)

	s.Sweep(context.Background())

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.Sweep(context.Background())
		}
	}
}

// Sweep публикует все просроченные отложенные посты и возвращает их число.
// Ошибка хранилища не останавливает планировщик: следующий тик попробует
// снова, условие "<= NOW()" само подбирает накопившиеся посты.
func (s *Scheduler) Sweep(ctx context.Context) int {
	count, err := s.postRepo.PublishScheduled(ctx)
	if err != nil {
		log.Printf("Ошибка публикации отложенных постов: %v", err)
		return 0
	}

	if count > 0 {
		log.Printf("Опубликовано отложенных постов: %d", count)
	}

	return count
}
