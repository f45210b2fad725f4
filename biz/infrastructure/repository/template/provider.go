package template

import (
	"assignment-hub/biz/infrastructure/config"
	"assignment-hub/biz/infrastructure/util/log"
)

// NewMySQLMapperFromConfig 创建 MySQL 映射器
func NewMySQLMapperFromConfig(config *config.Config) (*MySQLMapper, error) {
	log.Info("Creating MySQL mapper with DSN: %s", config.MySQL.DSN)
	return NewMySQLMapper(config.MySQL.DSN)
}
