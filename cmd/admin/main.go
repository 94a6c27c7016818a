package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"mbox/internal/config"
	"mbox/internal/database"
)

// dbOverrides 是命令行上对数据库配置的覆盖，零值表示沿用配置文件/环境变量。
type dbOverrides struct {
	host     string
	port     int
	name     string
	user     string
	password string
	sslmode  string
}

func main() {
	var (
		fixturesPath = flag.String("fixtures", "", "演示数据 JSON 文件（可选，默认使用内置数据）")
		reset        = flag.Bool("reset", false, "写入前清空内容表")
		overrides    dbOverrides
	)
	flag.StringVar(&overrides.host, "db-host", "", "数据库 Host（覆盖 DATABASE_HOST）")
	flag.IntVar(&overrides.port, "db-port", 0, "数据库 Port（覆盖 DATABASE_PORT）")
	flag.StringVar(&overrides.name, "db-name", "", "数据库名（覆盖 POSTGRES_DB）")
	flag.StringVar(&overrides.user, "db-user", "", "数据库用户（覆盖 POSTGRES_USER）")
	flag.StringVar(&overrides.password, "db-password", "", "数据库密码（覆盖 POSTGRES_PASSWORD）")
	flag.StringVar(&overrides.sslmode, "db-sslmode", "", "数据库 SSLMODE（覆盖 DATABASE_SSLMODE）")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db, err := database.InitDatabase(overrides.apply(cfg.Database))
	if err != nil {
		log.Fatalf("init database: %v", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("auto migrate: %v", err)
	}

	fixtures, err := loadFixtures(*fixturesPath)
	if err != nil {
		log.Fatalf("load fixtures: %v", err)
	}

	if err := database.Seed(context.Background(), db, fixtures, *reset); err != nil {
		log.Fatalf("seed content: %v", err)
	}

	fmt.Printf("已写入演示数据：卡片 %d 条，视频 %d 条，图表 %d 条\n",
		len(fixtures.Cards), len(fixtures.Videos), len(fixtures.Charts))
}

func (o dbOverrides) apply(cfg config.DatabaseConfig) config.DatabaseConfig {
	if v := strings.TrimSpace(o.host); v != "" {
		cfg.Host = v
	}
	if o.port > 0 {
		cfg.Port = o.port
	}
	if v := strings.TrimSpace(o.name); v != "" {
		cfg.Name = v
	}
	if v := strings.TrimSpace(o.user); v != "" {
		cfg.User = v
	}
	if o.password != "" {
		cfg.Password = o.password
	}
	if v := strings.TrimSpace(o.sslmode); v != "" {
		cfg.SSLMode = v
	}
	return cfg
}

func loadFixtures(path string) (database.Fixtures, error) {
	if strings.TrimSpace(path) == "" {
		return database.DefaultFixtures()
	}
	f, err := os.Open(path)
	if err != nil {
		return database.Fixtures{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return database.LoadFixtures(f)
}
