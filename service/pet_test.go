package service

import (
	"Joyland/models"
	"Joyland/types"
	"context"
	"errors"
	"testing"
	"time"
)

func TestInteractGain(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.createUser(t, 1, models.UserStatusNormal)
	env.createPet(t, 1, func(p *models.Pet) {
		p.Hunger = 55
		p.Cleanliness = 55
		p.Mood = 55
		p.Stamina = 55
	})

	tests := []struct {
		action string
		check  func(p types.PetProfile) int
	}{
		{ActionFeed, func(p types.PetProfile) int { return p.Hunger }},
		{ActionBath, func(p types.PetProfile) int { return p.Cleanliness }},
		{ActionComfort, func(p types.PetProfile) int { return p.Mood }},
		{ActionRest, func(p types.PetProfile) int { return p.Stamina }},
	}
	for _, tt := range tests {
		result, err := env.pet.Interact(ctx, 1, tt.action)
		if err != nil {
			t.Fatalf("Interact(%s): %v", tt.action, err)
		}
		if got := tt.check(result.Pet); got != 65 {
			t.Errorf("%s: stat = %d, want 65", tt.action, got)
		}
	}
}

func TestInteractClampAtMax(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.createUser(t, 1, models.UserStatusNormal)
	env.createPet(t, 1, func(p *models.Pet) {
		p.Hunger = 95
		p.Mood = 50 // 避免触发四维全满的奖励分支
	})

	result, err := env.pet.Interact(ctx, 1, ActionFeed)
	if err != nil {
		t.Fatalf("Interact: %v", err)
	}
	if result.Pet.Hunger != 100 {
		t.Errorf("hunger = %d, want clamped to 100", result.Pet.Hunger)
	}
}

func TestInteractInvalidAction(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.createUser(t, 1, models.UserStatusNormal)
	env.createPet(t, 1, nil)

	_, err := env.pet.Interact(ctx, 1, "dance")
	if !errors.Is(err, ErrInvalidAction) {
		t.Fatalf("err = %v, want ErrInvalidAction", err)
	}
}

func TestInteractNoPet(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.pet.Interact(context.Background(), 1, ActionFeed)
	if !errors.Is(err, ErrNoPet) {
		t.Fatalf("err = %v, want ErrNoPet", err)
	}
}

func TestInteractExhausted(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.createUser(t, 1, models.UserStatusNormal)
	pet := env.createPet(t, 1, nil)
	// 插入时零值会被 default 标签回填成 100，归零走 UPDATE（和线上衰减到 0 的路径一致）
	if err := env.db.Model(&models.Pet{}).Where("id = ?", pet.ID).Update("mood", 0).Error; err != nil {
		t.Fatalf("zero mood: %v", err)
	}

	// 任一维归零就拒绝互动，包括恢复该维的那种
	_, err := env.pet.Interact(ctx, 1, ActionComfort)
	if !errors.Is(err, ErrPetExhausted) {
		t.Fatalf("err = %v, want ErrPetExhausted", err)
	}
}

func TestInteractRecoveryAndBonus(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.createUser(t, 1, models.UserStatusNormal)
	env.createPet(t, 1, func(p *models.Pet) {
		p.Hunger = 90
		p.Mood = 100
		p.Stamina = 100
		p.Cleanliness = 100
		p.Health = 40
	})

	result, err := env.pet.Interact(ctx, 1, ActionFeed)
	if err != nil {
		t.Fatalf("Interact: %v", err)
	}

	// 四维拉满时健康无条件回满
	if result.Pet.Health != 100 {
		t.Errorf("health = %d, want restored to 100", result.Pet.Health)
	}

	// 当日首次拉满：100 积分 + 100 经验；100 经验不够升 2 级（门槛 140），等级不动
	if result.Bonus == nil {
		t.Fatal("bonus missing on first full-stats of the day")
	}
	if result.Bonus.Points != 100 {
		t.Errorf("bonus points = %d, want 100", result.Bonus.Points)
	}
	if result.Bonus.Exp != 100 {
		t.Errorf("bonus exp = %d, want 100", result.Bonus.Exp)
	}
	if result.Bonus.Level != 1 {
		t.Errorf("bonus level = %d, want 1", result.Bonus.Level)
	}

	saved := env.loadPet(t, 1)
	if saved.Level != 1 || saved.Exp != 100 {
		t.Errorf("saved pet level/exp = %d/%d, want 1/100", saved.Level, saved.Exp)
	}

	// 奖励流水只有一条 fullstats 单号
	var logs int64
	env.db.Model(&models.WalletLog{}).Where("user_id = ? AND source_id LIKE ?", 1, "fullstats-%").Count(&logs)
	if logs != 1 {
		t.Errorf("fullstats log count = %d, want 1", logs)
	}

	balance, _ := env.wallet.Balance(ctx, 1)
	if balance != 100 {
		t.Errorf("balance = %d, want 100", balance)
	}
	env.assertLedgerInvariant(t, 1)
}

func TestInteractBonusOncePerDay(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.createUser(t, 1, models.UserStatusNormal)
	pet := env.createPet(t, 1, func(p *models.Pet) {
		p.Hunger = 90
		p.Mood = 100
		p.Stamina = 100
		p.Cleanliness = 100
	})

	first, err := env.pet.Interact(ctx, 1, ActionFeed)
	if err != nil {
		t.Fatalf("first interact: %v", err)
	}
	if first.Bonus == nil {
		t.Fatal("first full-stats should grant bonus")
	}

	// 掉下来再拉满，同一天不再发奖
	if err := env.db.Model(&models.Pet{}).Where("id = ?", pet.ID).Update("hunger", 90).Error; err != nil {
		t.Fatalf("drop hunger: %v", err)
	}
	second, err := env.pet.Interact(ctx, 1, ActionFeed)
	if err != nil {
		t.Fatalf("second interact: %v", err)
	}
	if second.Bonus != nil {
		t.Error("same-day second full-stats should not grant bonus")
	}
	if second.Pet.Hunger != 100 {
		t.Errorf("hunger = %d, interaction itself should still apply", second.Pet.Hunger)
	}

	// 次日额度刷新
	env.db.Model(&models.Pet{}).Where("id = ?", pet.ID).Update("hunger", 90)
	env.clk.T = env.clk.T.Add(24 * time.Hour)
	third, err := env.pet.Interact(ctx, 1, ActionFeed)
	if err != nil {
		t.Fatalf("next-day interact: %v", err)
	}
	if third.Bonus == nil {
		t.Error("next day full-stats should grant bonus again")
	}
	env.assertLedgerInvariant(t, 1)
}

func TestUpdateAppearance(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.createUser(t, 1, models.UserStatusNormal)
	env.createPet(t, 1, nil)
	env.wallet.Credit(ctx, &types.WalletChangeReq{UserID: 1, Amount: 250, ChangeType: models.TypeSignIn})

	result, err := env.pet.UpdateAppearance(ctx, 1, &types.UpdateAppearanceReq{SkinCode: "sakura"})
	if err != nil {
		t.Fatalf("UpdateAppearance: %v", err)
	}
	if result.Cost != 200 {
		t.Errorf("cost = %d, want 200", result.Cost)
	}
	if result.Balance != 50 {
		t.Errorf("balance = %d, want 50", result.Balance)
	}
	if result.Pet.SkinCode != "sakura" {
		t.Errorf("skin = %s, want sakura", result.Pet.SkinCode)
	}

	saved := env.loadPet(t, 1)
	if saved.SkinChangedAt == nil {
		t.Error("SkinChangedAt not stamped")
	}
	env.assertLedgerInvariant(t, 1)
}

func TestUpdateAppearanceFree(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.createUser(t, 1, models.UserStatusNormal)
	env.createPet(t, 1, nil)

	// 免费装扮不走账本，零余额也能换
	result, err := env.pet.UpdateAppearance(ctx, 1, &types.UpdateAppearanceReq{SkinCode: "classic", BackgroundCode: "meadow"})
	if err != nil {
		t.Fatalf("UpdateAppearance: %v", err)
	}
	if result.Cost != 0 {
		t.Errorf("cost = %d, want 0", result.Cost)
	}
	if result.Pet.SkinCode != "classic" || result.Pet.BackgroundCode != "meadow" {
		t.Errorf("appearance = %s/%s, want classic/meadow", result.Pet.SkinCode, result.Pet.BackgroundCode)
	}
}

func TestUpdateAppearanceErrors(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.createUser(t, 1, models.UserStatusNormal)
	env.createPet(t, 1, nil)

	if _, err := env.pet.UpdateAppearance(ctx, 1, &types.UpdateAppearanceReq{}); !errors.Is(err, ErrNothingToDo) {
		t.Errorf("empty req: err = %v, want ErrNothingToDo", err)
	}
	if _, err := env.pet.UpdateAppearance(ctx, 1, &types.UpdateAppearanceReq{SkinCode: "unknown"}); !errors.Is(err, ErrAppearanceUnavailable) {
		t.Errorf("unknown skin: err = %v, want ErrAppearanceUnavailable", err)
	}
	// 付费装扮但没钱
	if _, err := env.pet.UpdateAppearance(ctx, 1, &types.UpdateAppearanceReq{SkinCode: "sakura"}); !errors.Is(err, ErrInsufficientFunds) {
		t.Errorf("no funds: err = %v, want ErrInsufficientFunds", err)
	}

	// 失败的更换不落库
	saved := env.loadPet(t, 1)
	if saved.SkinCode != "" {
		t.Errorf("skin = %s, want unchanged", saved.SkinCode)
	}
}

func TestGetProfile(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.pet.GetProfile(ctx, 1); !errors.Is(err, ErrNoPet) {
		t.Fatalf("missing pet: err = %v, want ErrNoPet", err)
	}

	env.createUser(t, 1, models.UserStatusNormal)
	env.createPet(t, 1, func(p *models.Pet) {
		p.Level = 5
		p.Exp = 30
	})

	profile, err := env.pet.GetProfile(ctx, 1)
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if profile.Level != 5 || profile.Exp != 30 {
		t.Errorf("profile level/exp = %d/%d, want 5/30", profile.Level, profile.Exp)
	}
	if profile.NextLevelExp != RequiredExp(6) {
		t.Errorf("next level exp = %d, want %d", profile.NextLevelExp, RequiredExp(6))
	}
}
