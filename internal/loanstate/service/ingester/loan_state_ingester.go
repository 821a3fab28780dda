package ingester

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Tzienom/derisk-research/internal/clock"
	"github.com/Tzienom/derisk-research/internal/loanstate/chain"
	"github.com/Tzienom/derisk-research/internal/loanstate/ledger"
	"github.com/Tzienom/derisk-research/internal/loanstate/model"
	"go.uber.org/zap"
)

// Config bounds one ingestion run.
type Config struct {
	Protocol          model.Protocol
	InterestRateModel model.Address
	Addresses         []model.Address
	StartBlock        uint64
	EndBlock          uint64
	PageSize          uint64
	RetryLimit        int
	IdleSleep         time.Duration
}

// LoanStateIngesterService pages through protocol events, folds them into a
// ledger it owns, and persists a snapshot after every non-empty page.
type LoanStateIngesterService struct {
	logger            *zap.Logger
	protocol          model.Protocol
	interestRateModel model.Address
	addresses         []model.Address
	startBlock        uint64
	endBlock          uint64
	pageSize          uint64
	retryLimit        int
	idleSleep         time.Duration
	sleep             func(context.Context, time.Duration) error
	source            EventSource
	repo              Repository
	folder            Folder
	orderer           chain.Orderer
	metrics           LoanStateIngesterMetrics
}

// NewLoanStateIngesterService builds a LoanStateIngesterService with the given dependencies.
func NewLoanStateIngesterService(
	source EventSource,
	repo Repository,
	folder Folder,
	metrics LoanStateIngesterMetrics,
	cfg Config,
	logger *zap.Logger,
) (*LoanStateIngesterService, error) {
	if metrics == nil {
		return nil, errors.New("loan state ingester metrics is required")
	}
	if cfg.Protocol == "" {
		return nil, errors.New("protocol is required")
	}
	if cfg.InterestRateModel == "" {
		return nil, errors.New("interest rate model address is required")
	}
	if len(cfg.Addresses) == 0 {
		return nil, errors.New("at least one tracked address is required")
	}
	if cfg.PageSize == 0 {
		cfg.PageSize = defaultPageSize
	}
	if cfg.RetryLimit <= 0 {
		cfg.RetryLimit = defaultRetryLimit
	}

	return &LoanStateIngesterService{
		logger:            logger.With(zap.String("protocol", string(cfg.Protocol))),
		protocol:          cfg.Protocol,
		interestRateModel: cfg.InterestRateModel,
		addresses:         append([]model.Address(nil), cfg.Addresses...),
		startBlock:        cfg.StartBlock,
		endBlock:          cfg.EndBlock,
		pageSize:          cfg.PageSize,
		retryLimit:        cfg.RetryLimit,
		idleSleep:         cfg.IdleSleep,
		sleep:             clock.SleepWithContext,
		source:            source,
		repo:              repo,
		folder:            folder,
		orderer:           chain.NewOrderer(cfg.InterestRateModel),
		metrics:           metrics,
	}, nil
}

type progress struct {
	checkpoint uint64
	retries    int
	ledger     *ledger.Ledger
}

// Run folds pages from the start block until the end block is reached or the
// empty-page budget is spent. An error stops the loop in the state it
// occurred in, with the checkpoint of the last persisted page.
func (s *LoanStateIngesterService) Run(ctx context.Context) (Result, error) {
	started := time.Now()
	p := &progress{checkpoint: s.startBlock, ledger: ledger.New()}
	s.metrics.SetCheckpoint(p.checkpoint)
	s.logger.Info("starting loan state ingestion",
		zap.Uint64("start_block", s.startBlock),
		zap.Uint64("end_block", s.endBlock),
		zap.Uint64("page_size", s.pageSize),
		zap.Int("retry_limit", s.retryLimit),
	)

	for {
		state, err := s.run(ctx, p)
		result := Result{State: state, Checkpoint: p.checkpoint}
		if err != nil {
			return result, err
		}
		if state.Terminal() {
			s.logger.Info("loan state ingestion finished",
				zap.String("state", string(state)),
				zap.Uint64("checkpoint", p.checkpoint),
				zap.Int("accounts", p.ledger.Accounts()),
				zap.Duration("elapsed", time.Since(started)),
			)
			return result, nil
		}
	}
}

func (s *LoanStateIngesterService) run(ctx context.Context, p *progress) (State, error) {
	if p.checkpoint >= s.endBlock {
		s.logger.Info("reached end block", zap.Uint64("checkpoint", p.checkpoint))
		return StateDone, nil
	}
	if err := ctx.Err(); err != nil {
		return StateFetching, err
	}

	rng := chain.NewBlockRange(p.checkpoint, s.pageSize)
	started := time.Now()
	records, err := s.fetch(ctx, rng)
	s.metrics.ObserveFetch(err, len(records), started)
	if err != nil {
		s.logger.Error("fetch events failed", zap.Stringer("range", rng), zap.Error(err))
		return StateFetching, err
	}

	if len(records) == 0 {
		s.metrics.ObserveEmptyPage()
		p.checkpoint = rng.To
		p.retries++
		s.metrics.SetCheckpoint(p.checkpoint)
		if p.retries >= s.retryLimit {
			s.logger.Warn("retry budget exhausted",
				zap.Int("retries", p.retries),
				zap.Uint64("checkpoint", p.checkpoint),
			)
			return StateRetryExhausted, nil
		}
		s.logger.Info("no events in range", zap.Stringer("range", rng), zap.Int("retries", p.retries))
		if err := s.sleep(ctx, s.idleSleep); err != nil {
			return StateFetching, err
		}
		return StateFetching, nil
	}
	p.retries = 0
	s.logger.Info("fetched batch", zap.Stringer("range", rng), zap.Int("events", len(records)))

	started = time.Now()
	stats := s.folder.Fold(p.ledger, s.orderer.Order(records))
	s.metrics.ObserveFold(stats, started)
	s.logger.Info("folded batch",
		zap.Stringer("range", rng),
		zap.Int("applied", stats.Applied),
		zap.Int("ignored", stats.Ignored),
		zap.Int("skipped", stats.Skipped),
	)

	started = time.Now()
	rows := p.ledger.Snapshot(s.protocol, rng.To)
	err = s.persist(ctx, p.ledger, rows)
	s.metrics.ObservePersist(err, len(rows), started)
	if err != nil {
		s.logger.Error("persist snapshot failed", zap.Stringer("range", rng), zap.Error(err))
		return StatePersisting, err
	}
	p.ledger.ClearPendingInterestRates()
	s.logger.Info("persisted snapshot", zap.Uint64("block", rng.To), zap.Int("rows", len(rows)))

	p.checkpoint = rng.To
	s.metrics.SetCheckpoint(p.checkpoint)
	s.logger.Info("advanced checkpoint", zap.Uint64("checkpoint", p.checkpoint))
	return StateCheckpointing, nil
}

func (s *LoanStateIngesterService) fetch(ctx context.Context, rng chain.BlockRange) ([]model.EventRecord, error) {
	rates, err := s.source.Events(ctx, []model.Address{s.interestRateModel}, rng)
	if err != nil {
		return nil, fmt.Errorf("fetch interest rate model events %s: %w", rng, err)
	}
	events, err := s.source.Events(ctx, s.addresses, rng)
	if err != nil {
		return nil, fmt.Errorf("fetch market events %s: %w", rng, err)
	}
	return append(rates, events...), nil
}

func (s *LoanStateIngesterService) persist(ctx context.Context, l *ledger.Ledger, rows []model.LoanState) error {
	if err := s.repo.InsertLoanStates(ctx, rows); err != nil {
		return fmt.Errorf("insert loan states: %w", err)
	}
	if err := s.repo.InsertInterestRates(ctx, l.PendingInterestRates()); err != nil {
		return fmt.Errorf("insert interest rates: %w", err)
	}
	return nil
}
