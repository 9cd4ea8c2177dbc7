package inits

import (
	"fmt"
	"os"
	"rbac-user-manager/app/server/config"
	"rbac-user-manager/app/server/passwords"
	"strings"

	"github.com/joho/godotenv"
)

func Config() (*config.Config, error) {
	// 尽力加载 .env ，不存在也没关系，直接使用真实环境变量
	_ = godotenv.Load()

	var cfg config.Config

	{
		mode, exist := os.LookupEnv("MODE")
		cfg.System.IsProd = exist && strings.HasPrefix(strings.ToLower(mode), "p")
	}

	cfg.System.LogLevel = os.Getenv("LOG_LEVEL")

	if listen, exist := os.LookupEnv("LISTEN"); !exist || listen == "" {
		cfg.System.Listen = ":5000" // 默认监听地址
	} else {
		cfg.System.Listen = listen
	}

	if dbconn, exist := os.LookupEnv("DB_CONN"); !exist || dbconn == "" {
		return nil, fmt.Errorf("DB_CONN environment variable not set")
	} else {
		cfg.System.DBConnectionString = dbconn
	}

	// 可选
	cfg.System.RedisConnectionString = os.Getenv("REDIS_CONN")

	if origins, exist := os.LookupEnv("CORS_ORIGINS"); !exist || origins == "" {
		cfg.System.CORSOrigins = []string{"*"}
	} else {
		for _, origin := range strings.Split(origins, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.System.CORSOrigins = append(cfg.System.CORSOrigins, origin)
			}
		}
	}

	if sigsk, exist := os.LookupEnv("JWT_SECRET"); !exist || sigsk == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable not set")
	} else {
		cfg.Security.SignatureSecretKey = sigsk
	}

	// 可选，留空时任何 adminKey 都不会匹配
	cfg.Security.AdminKey = os.Getenv("ADMIN_KEY")

	if algo, exist := os.LookupEnv("PASSWORD_HASH"); !exist || algo == "" {
		cfg.Security.PasswordHash = passwords.AlgoBcrypt
	} else {
		algo = strings.ToLower(algo)
		if algo != passwords.AlgoBcrypt && algo != passwords.AlgoArgon2id {
			return nil, fmt.Errorf("PASSWORD_HASH should be one of %s, %s", passwords.AlgoBcrypt, passwords.AlgoArgon2id)
		}
		cfg.Security.PasswordHash = algo
	}

	return &cfg, nil
}
