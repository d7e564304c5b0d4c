package provider

import (
	"classroom-sync/biz/application/service"
	"classroom-sync/biz/infrastructure/cache"
	"classroom-sync/biz/infrastructure/config"
	"classroom-sync/biz/infrastructure/repository/classroom"
	"classroom-sync/biz/infrastructure/repository/lesson"
	"classroom-sync/biz/infrastructure/repository/module"
	"classroom-sync/biz/infrastructure/repository/resource"
	"classroom-sync/biz/infrastructure/repository/synclog"

	"github.com/google/wire"
)

var provider *Provider

func Init() {
	var err error
	provider, err = NewProvider()
	if err != nil {
		panic(err)
	}
}

// Provider 提供controller依赖的对象
type Provider struct {
	Config           *config.Config
	ClassroomService service.IClassroomService
	StsService       service.IStsService
}

func Get() *Provider {
	return provider
}

var ApplicationSet = wire.NewSet(
	service.ClassroomServiceSet,
	service.StsServiceSet,
	service.AggregateBuilderSet,
	service.TreeReconcilerSet,
)

var InfrastructureSet = wire.NewSet(
	config.NewConfig,
	classroom.NewMySQLMapper,
	wire.Bind(new(classroom.IClassroomMapper), new(*classroom.MySQLMapper)),
	module.NewMySQLMapper,
	wire.Bind(new(module.IModuleMapper), new(*module.MySQLMapper)),
	lesson.NewMySQLMapper,
	wire.Bind(new(lesson.ILessonMapper), new(*lesson.MySQLMapper)),
	resource.NewMySQLMapper,
	wire.Bind(new(resource.IResourceMapper), new(*resource.MySQLMapper)),
	synclog.NewMongoMapper,
	wire.Bind(new(synclog.ISyncLogMapper), new(*synclog.MongoMapper)),
	cache.NewClassroomCacheMapper,
	wire.Bind(new(cache.IClassroomCacheMapper), new(*cache.ClassroomCacheMapper)),
)

var AllProvider = wire.NewSet(
	ApplicationSet,
	InfrastructureSet,
)
