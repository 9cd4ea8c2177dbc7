package config

type Config struct {
	System struct {
		IsProd                bool     // 是否为生产环境
		LogLevel              string   // 日志级别，留空使用默认
		Listen                string   // 监听地址
		DBConnectionString    string   // Postgres 数据库的连接字符串
		RedisConnectionString string   // Redis 数据库的连接字符串，留空则不启用角色缓存
		CORSOrigins           []string // 允许跨域的来源
	}
	Security struct {
		SignatureSecretKey string // 签名密钥，用于签发 JWT ，更新会导致旧有会话失效
		AdminKey           string // 管理员注册密钥，注册时提供一致的密钥即成为 admin ；留空则禁止自助注册管理员
		PasswordHash       string // 密码哈希算法： bcrypt 或 argon2id
	}
}
