package service

import (
	"Joyland/config"
	"Joyland/dao"
	"Joyland/models"
	"Joyland/pkg/clock"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// 测试基准时刻：2024-03-10 12:00 CST（东八区）
var testNow = time.Date(2024, 3, 10, 4, 0, 0, 0, time.UTC)

type testEnv struct {
	db       *gorm.DB
	clk      *clock.Fixed
	cfg      *config.Config
	txm      *dao.TxManager
	wallet   *WalletService
	level    *LevelService
	pet      *PetService
	signin   *SignInService
	game     *GameService
	exchange *ExchangeService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// sqlite 没有行锁语法，把 FOR UPDATE 子句替换为空
	db.ClauseBuilders["FOR"] = func(c clause.Clause, builder clause.Builder) {
		if _, ok := c.Expression.(clause.Locking); ok {
			return
		}
		c.Build(builder)
	}

	err = db.AutoMigrate(
		&models.Users{},
		&models.UserWallet{},
		&models.WalletLog{},
		&models.Pet{},
		&models.SignInRecord{},
		&models.SignInRule{},
		&models.GameSession{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := &config.Config{
		Reward: &config.Reward{
			DailyPlayLimit:       3,
			FullStatsBonusPoints: 100,
			FullStatsBonusExp:    100,
			CouponSalt:           "test-salt",
			SkinCosts:            map[string]int{"classic": 0, "sakura": 200},
			BackgroundCosts:      map[string]int{"meadow": 0, "galaxy": 300},
		},
	}

	clk := &clock.Fixed{T: testNow}
	txm := dao.NewTxManager(db)

	wallet := &WalletService{TxManager: txm, WalletDAO: dao.NewWallet(db)}
	level := &LevelService{Wallet: wallet, Clock: clk}
	exchange := &ExchangeService{Config: cfg, TxManager: txm, Wallet: wallet}
	pet := &PetService{
		Config:    cfg,
		TxManager: txm,
		PetDAO:    dao.NewPetDAO(db),
		Level:     level,
		Wallet:    wallet,
		Catalog:   &ConfigCatalog{Config: cfg},
		Clock:     clk,
	}
	signin := &SignInService{
		Config:    cfg,
		TxManager: txm,
		SignInDAO: dao.NewSignInDAO(db),
		Wallet:    wallet,
		Level:     level,
		Issuer:    exchange,
		Clock:     clk,
	}
	game := &GameService{
		Config:    cfg,
		TxManager: txm,
		GameDAO:   dao.NewGameDAO(db),
		UserDAO:   dao.NewUsers(db),
		PetDAO:    dao.NewPetDAO(db),
		Wallet:    wallet,
		Level:     level,
		Clock:     clk,
	}

	return &testEnv{
		db: db, clk: clk, cfg: cfg, txm: txm,
		wallet: wallet, level: level, pet: pet,
		signin: signin, game: game, exchange: exchange,
	}
}

func (e *testEnv) createUser(t *testing.T, id uint64, status int8) {
	t.Helper()
	if err := e.db.Create(&models.Users{ID: id, Nickname: "tester", Status: status}).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
}

func (e *testEnv) createPet(t *testing.T, userID uint64, mutate func(*models.Pet)) *models.Pet {
	t.Helper()
	pet := &models.Pet{
		UserID:      userID,
		Name:        "团子",
		Level:       1,
		Hunger:      80,
		Mood:        80,
		Stamina:     80,
		Cleanliness: 80,
		Health:      80,
	}
	if mutate != nil {
		mutate(pet)
	}
	if err := e.db.Create(pet).Error; err != nil {
		t.Fatalf("create pet: %v", err)
	}
	return pet
}

func (e *testEnv) seedRule(t *testing.T, day, points, exp int, couponType string) {
	t.Helper()
	err := e.db.Create(&models.SignInRule{Day: day, Points: points, Exp: exp, CouponType: couponType}).Error
	if err != nil {
		t.Fatalf("seed rule: %v", err)
	}
}

func (e *testEnv) loadPet(t *testing.T, userID uint64) *models.Pet {
	t.Helper()
	var pet models.Pet
	if err := e.db.Where("user_id = ?", userID).First(&pet).Error; err != nil {
		t.Fatalf("load pet: %v", err)
	}
	return &pet
}

// balanceAndSum 返回账户余额和流水合计，二者必须恒等
func (e *testEnv) balanceAndSum(t *testing.T, userID uint64) (int64, int64) {
	t.Helper()
	var account models.UserWallet
	if err := e.db.Where("user_id = ?", userID).First(&account).Error; err != nil {
		t.Fatalf("load wallet: %v", err)
	}
	var sum int64
	err := e.db.Model(&models.WalletLog{}).
		Select("IFNULL(SUM(amount), 0)").
		Where("user_id = ?", userID).
		Scan(&sum).Error
	if err != nil {
		t.Fatalf("sum logs: %v", err)
	}
	return account.Balance, sum
}

func (e *testEnv) assertLedgerInvariant(t *testing.T, userID uint64) {
	t.Helper()
	balance, sum := e.balanceAndSum(t, userID)
	if balance != sum {
		t.Fatalf("ledger invariant broken: balance=%d, sum=%d", balance, sum)
	}
}
