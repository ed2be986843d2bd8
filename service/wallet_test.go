package service

import (
	"Joyland/models"
	"Joyland/types"
	"context"
	"errors"
	"testing"
)

func TestCreditCreatesAccount(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	result, err := env.wallet.Credit(ctx, &types.WalletChangeReq{
		UserID:     1,
		Amount:     100,
		ChangeType: models.TypeSignIn,
		SourceID:   "signin-1-2024-03-10",
		Remark:     "连续签到第 1 天",
	})
	if err != nil {
		t.Fatalf("Credit: %v", err)
	}
	if !result.Applied {
		t.Error("first credit not applied")
	}
	if result.Balance != 100 {
		t.Errorf("balance = %d, want 100", result.Balance)
	}
	env.assertLedgerInvariant(t, 1)
}

func TestCreditIdempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	req := &types.WalletChangeReq{
		UserID:     1,
		Amount:     50,
		ChangeType: models.TypeGameReward,
		SourceID:   "game-12345",
	}

	first, err := env.wallet.Credit(ctx, req)
	if err != nil {
		t.Fatalf("first credit: %v", err)
	}
	second, err := env.wallet.Credit(ctx, req)
	if err != nil {
		t.Fatalf("second credit: %v", err)
	}

	if !first.Applied {
		t.Error("first credit not applied")
	}
	if second.Applied {
		t.Error("duplicate source applied twice")
	}
	if second.Balance != 50 {
		t.Errorf("balance after replay = %d, want 50", second.Balance)
	}

	// 同一单号只能有一条流水
	var count int64
	env.db.Model(&models.WalletLog{}).Where("user_id = ? AND source_id = ?", 1, "game-12345").Count(&count)
	if count != 1 {
		t.Errorf("log count = %d, want 1", count)
	}
	env.assertLedgerInvariant(t, 1)
}

func TestCreditWithoutSourceID(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// 不带单号的变动不做幂等合并，两次都入账
	for i := 0; i < 2; i++ {
		result, err := env.wallet.Credit(ctx, &types.WalletChangeReq{
			UserID: 1, Amount: 30, ChangeType: models.TypeSignIn,
		})
		if err != nil {
			t.Fatalf("credit %d: %v", i, err)
		}
		if !result.Applied {
			t.Fatalf("credit %d not applied", i)
		}
	}

	balance, _ := env.wallet.Balance(ctx, 1)
	if balance != 60 {
		t.Errorf("balance = %d, want 60", balance)
	}
}

func TestDebitInsufficientFunds(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// 没有账户
	_, err := env.wallet.Debit(ctx, &types.WalletChangeReq{UserID: 1, Amount: 10, ChangeType: models.TypeExchange})
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("debit without account: err = %v, want ErrInsufficientFunds", err)
	}

	// 余额不够
	if _, err := env.wallet.Credit(ctx, &types.WalletChangeReq{UserID: 1, Amount: 5, ChangeType: models.TypeSignIn}); err != nil {
		t.Fatalf("seed credit: %v", err)
	}
	_, err = env.wallet.Debit(ctx, &types.WalletChangeReq{UserID: 1, Amount: 10, ChangeType: models.TypeExchange})
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("debit over balance: err = %v, want ErrInsufficientFunds", err)
	}

	// 失败的扣减不留流水
	balance, _ := env.wallet.Balance(ctx, 1)
	if balance != 5 {
		t.Errorf("balance = %d, want 5", balance)
	}
	env.assertLedgerInvariant(t, 1)
}

func TestDebitExactBalance(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.wallet.Credit(ctx, &types.WalletChangeReq{UserID: 1, Amount: 100, ChangeType: models.TypeSignIn}); err != nil {
		t.Fatalf("seed credit: %v", err)
	}

	result, err := env.wallet.Debit(ctx, &types.WalletChangeReq{
		UserID: 1, Amount: 100, ChangeType: models.TypeExchange, SourceID: "exchange-abc",
	})
	if err != nil {
		t.Fatalf("Debit: %v", err)
	}
	if result.Balance != 0 {
		t.Errorf("balance = %d, want 0", result.Balance)
	}
	env.assertLedgerInvariant(t, 1)
}

func TestChangeInvalidAmount(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for _, amount := range []int64{0, -10} {
		if _, err := env.wallet.Credit(ctx, &types.WalletChangeReq{UserID: 1, Amount: amount}); !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("Credit(%d): err = %v, want ErrInvalidAmount", amount, err)
		}
		if _, err := env.wallet.Debit(ctx, &types.WalletChangeReq{UserID: 1, Amount: amount}); !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("Debit(%d): err = %v, want ErrInvalidAmount", amount, err)
		}
	}
}

func TestBalanceUnknownUser(t *testing.T) {
	env := newTestEnv(t)

	balance, err := env.wallet.Balance(context.Background(), 999)
	if err != nil {
		t.Fatalf("Balance: %v", err)
	}
	if balance != 0 {
		t.Errorf("balance = %d, want 0", balance)
	}
}

func TestAccountDashboard(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	account, err := env.wallet.GetAccountDashboard(ctx, 1)
	if err != nil {
		t.Fatalf("dashboard for new user: %v", err)
	}
	if account.Balance != 0 || account.TotalEarned != 0 || account.TotalUsed != 0 {
		t.Errorf("new user dashboard = %+v, want zeros", account)
	}

	env.wallet.Credit(ctx, &types.WalletChangeReq{UserID: 1, Amount: 200, ChangeType: models.TypeSignIn})
	env.wallet.Credit(ctx, &types.WalletChangeReq{UserID: 1, Amount: 100, ChangeType: models.TypeGameReward})
	env.wallet.Debit(ctx, &types.WalletChangeReq{UserID: 1, Amount: 120, ChangeType: models.TypeExchange})

	account, err = env.wallet.GetAccountDashboard(ctx, 1)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if account.Balance != 180 {
		t.Errorf("balance = %d, want 180", account.Balance)
	}
	if account.TotalEarned != 300 {
		t.Errorf("total earned = %d, want 300", account.TotalEarned)
	}
	if account.TotalUsed != 120 {
		t.Errorf("total used = %d, want 120", account.TotalUsed)
	}
	env.assertLedgerInvariant(t, 1)
}

func TestListRecordsCursor(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for i := 0; i < 15; i++ {
		if _, err := env.wallet.Credit(ctx, &types.WalletChangeReq{UserID: 1, Amount: 10, ChangeType: models.TypeSignIn}); err != nil {
			t.Fatalf("seed credit %d: %v", i, err)
		}
	}
	env.wallet.Debit(ctx, &types.WalletChangeReq{UserID: 1, Amount: 40, ChangeType: models.TypeExchange})

	// 第一页
	page, err := env.wallet.ListRecords(ctx, 1, "", 0, 10)
	if err != nil {
		t.Fatalf("ListRecords: %v", err)
	}
	if len(page.Records) != 10 {
		t.Fatalf("page 1 size = %d, want 10", len(page.Records))
	}
	if !page.HasMore {
		t.Error("page 1 should have more")
	}
	if page.Records[0].OrderType != "EXPENSE" {
		t.Errorf("newest record type = %s, want EXPENSE", page.Records[0].OrderType)
	}

	// 游标翻页，拿到剩下的
	page2, err := env.wallet.ListRecords(ctx, 1, "", page.NextCursor, 10)
	if err != nil {
		t.Fatalf("ListRecords page 2: %v", err)
	}
	if len(page2.Records) != 6 {
		t.Fatalf("page 2 size = %d, want 6", len(page2.Records))
	}
	if page2.HasMore {
		t.Error("page 2 should be the last")
	}

	// 收支过滤
	income, err := env.wallet.ListRecords(ctx, 1, "income", 0, 100)
	if err != nil {
		t.Fatalf("ListRecords income: %v", err)
	}
	if len(income.Records) != 15 {
		t.Errorf("income count = %d, want 15", len(income.Records))
	}
	expense, err := env.wallet.ListRecords(ctx, 1, "expense", 0, 100)
	if err != nil {
		t.Fatalf("ListRecords expense: %v", err)
	}
	if len(expense.Records) != 1 {
		t.Errorf("expense count = %d, want 1", len(expense.Records))
	}
}
