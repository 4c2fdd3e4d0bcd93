package impl

import (
	"context"
	"log/slog"

	deliverycontext "peeko/internal/delivery/context"
	"peeko/internal/domain/entity"
	"peeko/internal/domain/repository"
	"peeko/internal/errors"
	"peeko/internal/usecase"

	"go.uber.org/fx"
)

// messageRefBatchSize bounds how many unresolved codes are resolved per user lookup.
const messageRefBatchSize = 500

type maintenanceService struct {
	txManager   repository.TransactionManager
	userRepo    repository.UserRepository
	messageRepo repository.MessageRepository
	logger      *slog.Logger
}

// MaintenanceServiceParams holds dependencies for MaintenanceService, injected by Fx.
type MaintenanceServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	UserRepo    repository.UserRepository
	MessageRepo repository.MessageRepository
	Logger      *slog.Logger
}

// NewMaintenanceService creates a new maintenance service instance
func NewMaintenanceService(params MaintenanceServiceParams) usecase.MaintenanceUsecase {
	return &maintenanceService{
		txManager:   params.TxManager,
		userRepo:    params.UserRepo,
		messageRepo: params.MessageRepo,
		logger:      params.Logger,
	}
}

func (srv *maintenanceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Reconcile repairs friendship mirrors, mutual and stale requests, device back-references and message user references.
// Every step is idempotent, so a run over a consistent store reports zero changes.
func (srv *maintenanceService) Reconcile(ctx context.Context) (*entity.ReconcileReport, error) {
	report := &entity.ReconcileReport{}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		friendshipRepo := repoFactory.FriendshipRepo()

		var err error
		if report.FriendshipMirrorsRestored, err = friendshipRepo.RestoreMirrors(ctx); err != nil {
			return errors.Wrap(err, "failed to restore friendship mirrors")
		}

		if report.MutualRequestsResolved, err = friendshipRepo.ResolveMutualRequests(ctx); err != nil {
			return errors.Wrap(err, "failed to resolve mutual friend requests")
		}

		if report.StaleRequestsPurged, err = friendshipRepo.PurgeResolvedRequests(ctx); err != nil {
			return errors.Wrap(err, "failed to purge resolved friend requests")
		}

		if report.DeviceLinksRepaired, err = repoFactory.DeviceRepo().RepairUserLinks(ctx); err != nil {
			return errors.Wrap(err, "failed to repair device links")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	resolved, err := srv.resolveMessageRefs(ctx)
	if err != nil {
		return nil, err
	}
	report.MessageRefsResolved = resolved

	srv.log(ctx).Info("Reconcile finished",
		slog.Int64("friendshipMirrorsRestored", report.FriendshipMirrorsRestored),
		slog.Int64("mutualRequestsResolved", report.MutualRequestsResolved),
		slog.Int64("staleRequestsPurged", report.StaleRequestsPurged),
		slog.Int64("deviceLinksRepaired", report.DeviceLinksRepaired),
		slog.Int64("messageRefsResolved", report.MessageRefsResolved),
	)

	return report, nil
}

// resolveMessageRefs fills in user references on messages whose codes now belong to a user.
// Codes are walked in pages so codes that never resolve cannot hide the ones after them.
func (srv *maintenanceService) resolveMessageRefs(ctx context.Context) (int64, error) {
	var total int64
	after := ""

	for {
		codes, err := srv.messageRepo.FindCodesMissingUserRefs(ctx, after, messageRefBatchSize)
		if err != nil {
			return total, errors.Wrap(err, "failed to list unresolved message codes")
		}
		if len(codes) == 0 {
			return total, nil
		}

		users, err := srv.userRepo.FindByCodes(ctx, codes)
		if err != nil {
			return total, errors.Wrap(err, "failed to resolve message codes")
		}

		for _, user := range users {
			updated, err := srv.messageRepo.SetUserRefs(ctx, user.UserCode, user.ID)
			if err != nil {
				return total, errors.Wrap(err, "failed to set message user references")
			}
			total += updated
		}

		if len(codes) < messageRefBatchSize {
			return total, nil
		}
		after = codes[len(codes)-1]
	}
}
