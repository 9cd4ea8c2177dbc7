package inits

import (
	"errors"
	"fmt"
	"rbac-user-manager/app/server/models"
	"rbac-user-manager/app/server/rbac"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func DB(conn string) (*gorm.DB, error) {
	// 打开连接
	db, err := gorm.Open(postgres.Open(conn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err = Prepare(db); err != nil {
		return nil, err
	}

	// 返回
	return db, nil
}

// Prepare 迁移表结构并写入启动数据，可重复执行
func Prepare(db *gorm.DB) error {
	// 迁移
	if err := mig(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	// 初始化启动数据
	if err := initData(db); err != nil {
		return fmt.Errorf("failed to init data into database: %w", err)
	}

	return nil
}

func mig(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Role{},
	)
}

func initData(db *gorm.DB) error {
	// 初始化默认角色，已存在的角色保持不变（管理员可能改过权限）
	for _, role := range rbac.DefaultRoles() {
		var existing models.Role
		err := db.First(&existing, "rolename = ?", role.RoleName).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to find role %s: %w", role.RoleName, err)
		}

		// 插入记录
		if err = db.Create(&role).Error; err != nil {
			return fmt.Errorf("failed to create role %s: %w", role.RoleName, err)
		}
	}

	// 已有数据或全部导入成功
	return nil
}
