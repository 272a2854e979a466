package components

import (
	"tripfair/internal/infra/cache"
	repo_impl "tripfair/internal/infra/repository"
	"tripfair/internal/pkg/config"
	"tripfair/internal/usecase/commands"
	"tripfair/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// The record cache fronts the write-side property/override reads;
		// its raw repositories are built inline so nothing bypasses it.
		fx.Annotate(
			NewRecordCache,
			fx.As(new(commands.PropertyRepository)),
			fx.As(new(commands.OverrideRepository)),
			fx.As(new(commands.RecordCache)),
		),
		fx.Annotate(
			repo_impl.NewOverrideRepository,
			fx.As(new(commands.OverrideWriteRepository)),
		),
		fx.Annotate(
			repo_impl.NewServiceRepository,
			fx.As(new(queries.ServiceStore)),
			fx.As(new(commands.ServiceCatalog)),
		),
		fx.Annotate(
			repo_impl.NewProviderRepository,
			fx.As(new(queries.ProviderStore)),
		),
		fx.Annotate(
			repo_impl.NewPackageRepository,
			fx.As(new(commands.PackageRepository)),
		),
	),
)

func NewRecordCache(pool *pgxpool.Pool, cfg config.Config) *cache.RecordCache {
	return cache.NewRecordCache(
		repo_impl.NewPropertyRepository(pool),
		repo_impl.NewOverrideRepository(pool),
		cfg.Pricing.RecordCacheTTL,
	)
}
