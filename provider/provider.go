package provider

import (
	"assignment-hub/biz/application/service"
	"assignment-hub/biz/infrastructure/cache"
	"assignment-hub/biz/infrastructure/config"
	"assignment-hub/biz/infrastructure/repository/assignment"
	"assignment-hub/biz/infrastructure/repository/submission"
	"assignment-hub/biz/infrastructure/repository/template"
	"assignment-hub/biz/infrastructure/repository/user"
	"assignment-hub/biz/infrastructure/util"

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
	Config            *config.Config
	UserService       service.UserService
	AssignmentService service.AssignmentService
	SubmissionService service.SubmissionService
	TemplateService   service.TemplateService
}

func Get() *Provider {
	return provider
}

var ApplicationSet = wire.NewSet(
	service.UserServiceSet,
	service.AssignmentServiceSet,
	service.SubmissionServiceSet,
	service.TemplateServiceSet,
)

var InfrastructureSet = wire.NewSet(
	config.NewConfig,
	user.NewMongoMapper,
	wire.Bind(new(user.IMongoMapper), new(*user.MongoMapper)),
	assignment.NewMongoMapper,
	wire.Bind(new(assignment.IMongoMapper), new(*assignment.MongoMapper)),
	submission.NewMongoMapper,
	wire.Bind(new(submission.IMongoMapper), new(*submission.MongoMapper)),
	template.NewMySQLMapperFromConfig,
	wire.Bind(new(template.IMySQLMapper), new(*template.MySQLMapper)),
	cache.NewDetailCacheMapper,
	wire.Bind(new(cache.IDetailCacheMapper), new(*cache.DetailCacheMapper)),
	util.NewHttpClient,
	wire.Bind(new(util.INotifyClient), new(*util.HttpClient)),
)

var AllProvider = wire.NewSet(
	ApplicationSet,
	InfrastructureSet,
)
