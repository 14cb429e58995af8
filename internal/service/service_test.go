package service

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hance08/ledgerbank/internal/config"
	"github.com/hance08/ledgerbank/internal/logging"
	"github.com/hance08/ledgerbank/internal/model"
	"github.com/hance08/ledgerbank/internal/store"
	"github.com/hance08/ledgerbank/internal/validation"
	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type fixture struct {
	svc   *Service
	store *store.Store
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	s, err := store.NewStore(filepath.Join(t.TempDir(), "bank.db"), os.DirFS(filepath.Join("..", "..")))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() {
		_ = s.Close()
	})

	svc, err := NewService(s, config.NewDefault(), logging.Discard())
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return &fixture{svc: svc, store: s}
}

// numbers makes the account service hand out the given numbers in order.
func (f *fixture) numbers(ns ...int64) {
	i := 0
	f.svc.Account.numberGen = func() int64 {
		n := ns[i%len(ns)]
		i++
		return n
	}
}

func (f *fixture) open(t *testing.T, number int64, name, variant, balance string) *model.Account {
	t.Helper()
	f.numbers(number)

	acc, err := f.svc.Account.CreateAccount(CreateAccountInput{
		Profile: model.Profile{
			Name:        name,
			Nationality: "egyptian",
			Gender:      "male",
			Phone:       "01012345678",
			Document:    "national id",
		},
		Variant:         variant,
		InitialBalance:  dec(balance),
		Password:        "pw",
		ConfirmPassword: "pw",
	})
	if err != nil {
		t.Fatalf("CreateAccount: %v", err)
	}
	return acc
}

func (f *fixture) history(t *testing.T, number int64) []*model.Transaction {
	t.Helper()
	txs, err := f.svc.Transaction.History(number)
	if err != nil {
		t.Fatalf("History(%d): %v", number, err)
	}
	return txs
}

func (f *fixture) balance(t *testing.T, number int64) decimal.Decimal {
	t.Helper()
	_, bal, err := f.svc.Account.CheckBalance(number)
	if err != nil {
		t.Fatalf("CheckBalance(%d): %v", number, err)
	}
	return bal
}

func TestCreateThenLoadRoundTrip(t *testing.T) {
	f := newFixture(t)
	created := f.open(t, 4242, "jane doe", "saving", "5000.25")

	loaded, err := f.svc.Account.LoadAccount(4242)
	if err != nil {
		t.Fatal(err)
	}

	if loaded.Number != created.Number || loaded.Variant != model.Saving {
		t.Fatalf("loaded %+v", loaded)
	}
	if loaded.Profile != created.Profile {
		t.Fatalf("profile %+v want %+v", loaded.Profile, created.Profile)
	}
	if loaded.Profile.Name != "Jane Doe" || loaded.Profile.Gender != "Male" {
		t.Fatalf("profile not normalised: %+v", loaded.Profile)
	}
	if !loaded.Balance().Equal(dec("5000.25")) {
		t.Fatalf("balance=%s", loaded.Balance())
	}
	if !loaded.CheckPassword("pw") {
		t.Fatal("password not preserved")
	}
	if !loaded.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("created_at %v want %v", loaded.CreatedAt, created.CreatedAt)
	}
}

func TestCreateAccountValidation(t *testing.T) {
	f := newFixture(t)
	f.numbers(1500)

	base := CreateAccountInput{
		Profile:         model.Profile{Name: "A", Phone: "01012345678"},
		Variant:         "Current",
		InitialBalance:  dec("2500"),
		Password:        "x",
		ConfirmPassword: "x",
	}

	cases := []struct {
		name   string
		mutate func(*CreateAccountInput)
		want   error
	}{
		{"unknown provider", func(in *CreateAccountInput) { in.Profile.Phone = "09912345678" }, validation.ErrUnknownProvider},
		{"short phone", func(in *CreateAccountInput) { in.Profile.Phone = "0101234" }, validation.ErrInvalidPhone},
		{"bad variant", func(in *CreateAccountInput) { in.Variant = "Gold" }, model.ErrUnknownVariant},
		{"below current minimum", func(in *CreateAccountInput) { in.InitialBalance = dec("2499") }, model.ErrBelowMinimum},
		{"below saving minimum", func(in *CreateAccountInput) {
			in.Variant = "Saving"
			in.InitialBalance = dec("2999.99")
		}, model.ErrBelowMinimum},
		{"password mismatch", func(in *CreateAccountInput) { in.ConfirmPassword = "y" }, validation.ErrPasswordMismatch},
		{"empty name", func(in *CreateAccountInput) { in.Profile.Name = " " }, validation.ErrEmptyField},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := base
			tc.mutate(&in)
			if _, err := f.svc.Account.CreateAccount(in); !errors.Is(err, tc.want) {
				t.Fatalf("want %v, got %v", tc.want, err)
			}
		})
	}

	accounts, err := f.svc.Account.ListAccounts()
	if err != nil {
		t.Fatal(err)
	}
	if len(accounts) != 0 {
		t.Fatalf("rejected input persisted %d accounts", len(accounts))
	}
}

func TestAccountNumberCollisionRetries(t *testing.T) {
	f := newFixture(t)
	f.open(t, 1111, "First", "Current", "3000")

	f.numbers(1111, 1111, 2222)
	acc, err := f.svc.Account.CreateAccount(CreateAccountInput{
		Profile:         model.Profile{Name: "Second", Phone: "01112345678"},
		Variant:         "Current",
		InitialBalance:  dec("3000"),
		Password:        "p",
		ConfirmPassword: "p",
	})
	if err != nil {
		t.Fatal(err)
	}
	if acc.Number != 2222 {
		t.Fatalf("number=%d want 2222", acc.Number)
	}
}

func TestAccountNumberExhausted(t *testing.T) {
	f := newFixture(t)
	f.open(t, 1111, "First", "Current", "3000")

	f.numbers(1111)
	_, err := f.svc.Account.CreateAccount(CreateAccountInput{
		Profile:         model.Profile{Name: "Second", Phone: "01112345678"},
		Variant:         "Current",
		InitialBalance:  dec("3000"),
		Password:        "p",
		ConfirmPassword: "p",
	})
	if !errors.Is(err, ErrNumberExhausted) {
		t.Fatalf("want ErrNumberExhausted, got %v", err)
	}
}

func TestDepositRecordsTransaction(t *testing.T) {
	f := newFixture(t)
	f.open(t, 1001, "A", "Current", "3000")

	bal, err := f.svc.Transaction.Deposit(1001, dec("250.5"))
	if err != nil {
		t.Fatal(err)
	}
	if !bal.Equal(dec("3250.5")) {
		t.Fatalf("balance=%s", bal)
	}

	txs := f.history(t, 1001)
	if len(txs) != 1 || txs[0].Kind != model.KindDeposit || !txs[0].Amount.Equal(dec("250.5")) || !txs[0].Balance.Equal(bal) {
		t.Fatalf("history=%+v", txs)
	}
	if txs[0].Reference == "" || txs[0].Timestamp.IsZero() {
		t.Fatalf("record missing reference or timestamp: %+v", txs[0])
	}
}

func TestNegativeDepositWritesNothing(t *testing.T) {
	f := newFixture(t)
	f.open(t, 1002, "A", "Current", "3000")

	if _, err := f.svc.Transaction.Deposit(1002, dec("-5")); !errors.Is(err, model.ErrInvalidAmount) {
		t.Fatalf("want ErrInvalidAmount, got %v", err)
	}
	if got := f.balance(t, 1002); !got.Equal(dec("3000")) {
		t.Fatalf("balance=%s", got)
	}
	if txs := f.history(t, 1002); len(txs) != 0 {
		t.Fatalf("history=%+v", txs)
	}
}

func TestWithdrawAtMinimumRejected(t *testing.T) {
	f := newFixture(t)
	f.open(t, 1003, "A", "Current", "2500")

	if _, err := f.svc.Transaction.Withdraw(1003, dec("1")); !errors.Is(err, model.ErrBelowMinimum) {
		t.Fatalf("want ErrBelowMinimum, got %v", err)
	}
	if got := f.balance(t, 1003); !got.Equal(dec("2500")) {
		t.Fatalf("balance=%s", got)
	}
	if txs := f.history(t, 1003); len(txs) != 0 {
		t.Fatalf("history=%+v", txs)
	}
}

func TestWithdraw(t *testing.T) {
	f := newFixture(t)
	f.open(t, 1004, "A", "Current", "5000")

	bal, err := f.svc.Transaction.Withdraw(1004, dec("1000"))
	if err != nil {
		t.Fatal(err)
	}
	if !bal.Equal(dec("4000")) {
		t.Fatalf("balance=%s", bal)
	}
	if txs := f.history(t, 1004); len(txs) != 1 || txs[0].Kind != model.KindWithdraw {
		t.Fatalf("history=%+v", txs)
	}
}

func TestSavingWithdrawRejected(t *testing.T) {
	f := newFixture(t)
	f.open(t, 1005, "A", "Saving", "100000")

	if _, err := f.svc.Transaction.Withdraw(1005, dec("10")); !errors.Is(err, model.ErrWithdrawNotAllowed) {
		t.Fatalf("want ErrWithdrawNotAllowed, got %v", err)
	}
	if txs := f.history(t, 1005); len(txs) != 0 {
		t.Fatalf("history=%+v", txs)
	}
}

func TestTransfer(t *testing.T) {
	f := newFixture(t)
	f.open(t, 2001, "Sender", "Current", "5000")
	f.open(t, 2002, "Receiver", "Saving", "3000")

	bal, err := f.svc.Transaction.Transfer(2001, 2002, dec("1200"))
	if err != nil {
		t.Fatal(err)
	}
	if !bal.Equal(dec("3800")) {
		t.Fatalf("sender balance=%s", bal)
	}
	if got := f.balance(t, 2002); !got.Equal(dec("4200")) {
		t.Fatalf("receiver balance=%s", got)
	}

	sent := f.history(t, 2001)
	received := f.history(t, 2002)
	if len(sent) != 1 || sent[0].Kind != model.KindTransferSent || !sent[0].Balance.Equal(dec("3800")) {
		t.Fatalf("sender history=%+v", sent)
	}
	if len(received) != 1 || received[0].Kind != model.KindTransferReceived || !received[0].Balance.Equal(dec("4200")) {
		t.Fatalf("receiver history=%+v", received)
	}
	if sent[0].Reference != received[0].Reference {
		t.Fatalf("references differ: %s vs %s", sent[0].Reference, received[0].Reference)
	}
}

func TestTransferFromSavingAllowed(t *testing.T) {
	f := newFixture(t)
	f.open(t, 2003, "Saver", "Saving", "4000")
	f.open(t, 2004, "Other", "Current", "3000")

	if _, err := f.svc.Transaction.Transfer(2003, 2004, dec("1000")); err != nil {
		t.Fatal(err)
	}
	if _, err := f.svc.Transaction.Transfer(2003, 2004, dec("0.01")); !errors.Is(err, model.ErrBelowMinimum) {
		t.Fatalf("want ErrBelowMinimum, got %v", err)
	}
}

func TestTransferRejections(t *testing.T) {
	f := newFixture(t)
	f.open(t, 3001, "A", "Current", "3000")
	f.open(t, 3002, "B", "Current", "3000")

	cases := []struct {
		name     string
		from, to int64
		amount   string
		want     error
	}{
		{"zero", 3001, 3002, "0", model.ErrInvalidAmount},
		{"negative", 3001, 3002, "-1", model.ErrInvalidAmount},
		{"below minimum", 3001, 3002, "501", model.ErrBelowMinimum},
		{"unknown receiver", 3001, 9000, "10", ErrReceiverNotFound},
		{"unknown sender", 9000, 3002, "10", ErrAccountNotFound},
		{"same account", 3001, 3001, "10", ErrSameAccount},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := f.svc.Transaction.Transfer(tc.from, tc.to, dec(tc.amount)); !errors.Is(err, tc.want) {
				t.Fatalf("want %v, got %v", tc.want, err)
			}
		})
	}

	for _, n := range []int64{3001, 3002} {
		if got := f.balance(t, n); !got.Equal(dec("3000")) {
			t.Fatalf("account %d balance=%s", n, got)
		}
		if txs := f.history(t, n); len(txs) != 0 {
			t.Fatalf("account %d history=%+v", n, txs)
		}
	}
}

func TestTransferIsAllOrNothing(t *testing.T) {
	f := newFixture(t)
	f.open(t, 3101, "A", "Current", "5000")
	f.open(t, 3102, "B", "Current", "3000")

	failing := &failingRepo{Repository: f.store, failOn: 2}
	f.svc.Transaction.repo = failing

	if _, err := f.svc.Transaction.Transfer(3101, 3102, dec("100")); !errors.Is(err, errInjected) {
		t.Fatalf("want injected failure, got %v", err)
	}

	if got := f.balance(t, 3101); !got.Equal(dec("5000")) {
		t.Fatalf("sender balance=%s after failed transfer", got)
	}
	if got := f.balance(t, 3102); !got.Equal(dec("3000")) {
		t.Fatalf("receiver balance=%s after failed transfer", got)
	}
	if txs := f.history(t, 3101); len(txs) != 0 {
		t.Fatalf("sender history=%+v", txs)
	}
}

func TestApplyInterest(t *testing.T) {
	f := newFixture(t)
	f.open(t, 4001, "Saver", "Saving", "10000")

	interest, bal, err := f.svc.Transaction.ApplyInterest(4001)
	if err != nil {
		t.Fatal(err)
	}
	if !interest.Equal(dec("1200")) || !bal.Equal(dec("11200")) {
		t.Fatalf("interest=%s balance=%s", interest, bal)
	}

	txs := f.history(t, 4001)
	if len(txs) != 1 || txs[0].Kind != model.KindInterest || !txs[0].Amount.Equal(dec("1200")) {
		t.Fatalf("history=%+v", txs)
	}
}

func TestApplyInterestOnCurrent(t *testing.T) {
	f := newFixture(t)
	f.open(t, 4002, "A", "Current", "10000")

	if _, _, err := f.svc.Transaction.ApplyInterest(4002); !errors.Is(err, model.ErrInterestNotSupported) {
		t.Fatalf("want ErrInterestNotSupported, got %v", err)
	}
}

func TestHistoryOrder(t *testing.T) {
	f := newFixture(t)
	f.open(t, 5001, "A", "Current", "5000")
	f.open(t, 5002, "B", "Current", "5000")

	if _, err := f.svc.Transaction.Deposit(5001, dec("10")); err != nil {
		t.Fatal(err)
	}
	if _, err := f.svc.Transaction.Withdraw(5001, dec("20")); err != nil {
		t.Fatal(err)
	}
	if _, err := f.svc.Transaction.Transfer(5002, 5001, dec("30")); err != nil {
		t.Fatal(err)
	}

	want := []model.TransactionKind{model.KindDeposit, model.KindWithdraw, model.KindTransferReceived}
	txs := f.history(t, 5001)
	if len(txs) != len(want) {
		t.Fatalf("len=%d", len(txs))
	}
	for i := range want {
		if txs[i].Kind != want[i] {
			t.Fatalf("txs[%d]=%s want %s", i, txs[i].Kind, want[i])
		}
	}

	if _, err := f.svc.Transaction.History(7777); !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("want ErrAccountNotFound, got %v", err)
	}
}

func TestDeleteAccount(t *testing.T) {
	f := newFixture(t)
	f.open(t, 6001, "Omar Khaled", "Current", "5000")
	if _, err := f.svc.Transaction.Deposit(6001, dec("1")); err != nil {
		t.Fatal(err)
	}

	if err := f.svc.Account.DeleteAccount("Someone Else", 6001); !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("wrong name: want ErrAccountNotFound, got %v", err)
	}
	if _, err := f.svc.Account.LoadAccount(6001); err != nil {
		t.Fatalf("account gone after rejected delete: %v", err)
	}
	if txs := f.history(t, 6001); len(txs) != 1 {
		t.Fatalf("history after rejected delete=%+v", txs)
	}

	if err := f.svc.Account.DeleteAccount("Omar Khaled", 6001); err != nil {
		t.Fatal(err)
	}
	if _, err := f.svc.Account.LoadAccount(6001); !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("want ErrAccountNotFound, got %v", err)
	}
	rows, err := f.store.GetTransactionsByAccount(6001)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 0 {
		t.Fatalf("transactions survived delete: %d", len(rows))
	}
}

func TestSummary(t *testing.T) {
	f := newFixture(t)
	f.open(t, 6101, "Mona", "Saving", "3000")

	acc, err := f.svc.Account.Summary("Mona", 6101)
	if err != nil {
		t.Fatal(err)
	}
	if acc.Variant != model.Saving {
		t.Fatalf("variant=%s", acc.Variant)
	}
	if _, err := f.svc.Account.Summary("Mona", 6102); !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("want ErrAccountNotFound, got %v", err)
	}
}

func TestClientLogin(t *testing.T) {
	f := newFixture(t)
	f.open(t, 7001, "A", "Current", "3000")

	if _, err := f.svc.Account.Login(7001, "pw"); err != nil {
		t.Fatal(err)
	}
	if _, err := f.svc.Account.Login(7001, "PW"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password: %v", err)
	}
	if _, err := f.svc.Account.Login(7002, "pw"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown account: %v", err)
	}
}

func TestAdminSeedAndLogin(t *testing.T) {
	f := newFixture(t)

	if err := f.svc.Admin.SeedAdmin(); err != nil {
		t.Fatal(err)
	}
	if err := f.svc.Admin.SeedAdmin(); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	admins, err := f.store.GetAllAdmins()
	if err != nil {
		t.Fatal(err)
	}
	if len(admins) != 1 {
		t.Fatalf("admins=%d", len(admins))
	}

	if err := f.svc.Admin.Login("admin", "123"); err != nil {
		t.Fatal(err)
	}
	if err := f.svc.Admin.Login("admin", "1234"); !errors.Is(err, ErrInvalidAdmin) {
		t.Fatalf("want ErrInvalidAdmin, got %v", err)
	}
}

func TestNewServiceRejectsBadConfig(t *testing.T) {
	f := newFixture(t)

	cfg := config.NewDefault()
	cfg.Bank.InterestRate = "twelve"
	if _, err := NewService(f.store, cfg, logging.Discard()); err == nil {
		t.Fatal("bad interest rate accepted")
	}

	cfg = config.NewDefault()
	cfg.Bank.AccountNumberMax = cfg.Bank.AccountNumberMin
	if _, err := NewService(f.store, cfg, logging.Discard()); err == nil {
		t.Fatal("empty number range accepted")
	}
}

func TestIsRejection(t *testing.T) {
	if !IsRejection(model.ErrBelowMinimum) || !IsRejection(ErrReceiverNotFound) {
		t.Fatal("policy and lookup errors are rejections")
	}
	if IsRejection(errors.New("disk full")) {
		t.Fatal("storage error reported as rejection")
	}
}

func TestListAccounts(t *testing.T) {
	f := newFixture(t)
	f.open(t, 8001, "A", "Current", "3000")
	f.open(t, 8002, "B", "Saving", "4000")

	accounts, err := f.svc.Account.ListAccounts()
	if err != nil {
		t.Fatal(err)
	}
	if len(accounts) != 2 {
		t.Fatalf("len=%d", len(accounts))
	}
	if accounts[0].Number != 8001 || accounts[1].Variant != model.Saving {
		t.Fatalf("accounts=%+v %+v", accounts[0], accounts[1])
	}
}
