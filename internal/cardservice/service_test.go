package cardservice

import (
	"context"
	"math"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/cashcard/internal/domain"
	"github.com/go-petr/cashcard/pkg/errorspkg"
	"github.com/go-petr/cashcard/pkg/randompkg"
)

func int32Ptr(v int32) *int32 {
	return &v
}

func TestCreate(t *testing.T) {
	testAmount := randompkg.AmountBetween(-1_000, 1_000)
	testCard := domain.CashCard{ID: 1, Amount: testAmount}

	testCases := []struct {
		name          string
		buildStubs    func(repo *MockRepo)
		checkResponse func(card domain.CashCard, err error)
	}{
		{
			name: "OK",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					Create(gomock.Any(), gomock.Eq(testAmount)).
					Times(1).
					Return(testCard, nil)
			},
			checkResponse: func(card domain.CashCard, err error) {
				require.NoError(t, err)
				require.Equal(t, testCard, card)
			},
		},
		{
			name: "RepoError",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					Create(gomock.Any(), gomock.Eq(testAmount)).
					Times(1).
					Return(domain.CashCard{}, errorspkg.ErrInternal)
			},
			checkResponse: func(card domain.CashCard, err error) {
				require.EqualError(t, err, errorspkg.ErrInternal.Error())
				require.Empty(t, card)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			tc.buildStubs(repo)

			service := New(repo)

			card, err := service.Create(context.Background(), testAmount)
			tc.checkResponse(card, err)
		})
	}
}

func TestGet(t *testing.T) {
	testCard := domain.CashCard{ID: 99, Amount: decimal.RequireFromString("123.45")}

	testCases := []struct {
		name          string
		id            int64
		buildStubs    func(repo *MockRepo)
		checkResponse func(card domain.CashCard, err error)
	}{
		{
			name: "OK",
			id:   testCard.ID,
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Eq(testCard.ID)).
					Times(1).
					Return(testCard, nil)
			},
			checkResponse: func(card domain.CashCard, err error) {
				require.NoError(t, err)
				require.Equal(t, testCard, card)
			},
		},
		{
			name: "ErrCardNotFound",
			id:   1000,
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Eq(int64(1000))).
					Times(1).
					Return(domain.CashCard{}, domain.ErrCardNotFound)
			},
			checkResponse: func(card domain.CashCard, err error) {
				require.EqualError(t, err, domain.ErrCardNotFound.Error())
				require.Empty(t, card)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			tc.buildStubs(repo)

			service := New(repo)

			card, err := service.Get(context.Background(), tc.id)
			tc.checkResponse(card, err)
		})
	}
}

func TestList(t *testing.T) {
	testCards := []domain.CashCard{
		{ID: 1, Amount: decimal.RequireFromString("1.00")},
		{ID: 2, Amount: decimal.RequireFromString("123.45")},
		{ID: 3, Amount: decimal.RequireFromString("150.00")},
	}

	type input struct {
		page          *int32
		size          *int32
		sortField     string
		sortDirection string
	}

	testCases := []struct {
		name          string
		input         input
		buildStubs    func(repo *MockRepo)
		checkResponse func(cards []domain.CashCard, err error)
	}{
		{
			name:  "DefaultsToFirstPageSortedByAmountAsc",
			input: input{},
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					Count(gomock.Any()).
					Times(1).
					Return(int64(3), nil)
				repo.EXPECT().
					List(gomock.Any(),
						gomock.Eq(DefaultPageSize),
						gomock.Eq(int32(0)),
						gomock.Eq("amount"),
						gomock.Eq(domain.SortAsc)).
					Times(1).
					Return(testCards, nil)
			},
			checkResponse: func(cards []domain.CashCard, err error) {
				require.NoError(t, err)
				require.Equal(t, testCards, cards)
			},
		},
		{
			name: "SecondPageDescending",
			input: input{
				page:          int32Ptr(1),
				size:          int32Ptr(1),
				sortField:     "amount",
				sortDirection: "desc",
			},
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					Count(gomock.Any()).
					Times(1).
					Return(int64(3), nil)
				repo.EXPECT().
					List(gomock.Any(),
						gomock.Eq(int32(1)),
						gomock.Eq(int32(1)),
						gomock.Eq("amount"),
						gomock.Eq(domain.SortDesc)).
					Times(1).
					Return(testCards[1:2], nil)
			},
			checkResponse: func(cards []domain.CashCard, err error) {
				require.NoError(t, err)
				require.Equal(t, testCards[1:2], cards)
			},
		},
		{
			name: "MixedCaseDirection",
			input: input{
				sortField:     "id",
				sortDirection: "DESC",
			},
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					Count(gomock.Any()).
					Times(1).
					Return(int64(3), nil)
				repo.EXPECT().
					List(gomock.Any(),
						gomock.Eq(DefaultPageSize),
						gomock.Eq(int32(0)),
						gomock.Eq("id"),
						gomock.Eq(domain.SortDesc)).
					Times(1).
					Return(testCards, nil)
			},
			checkResponse: func(cards []domain.CashCard, err error) {
				require.NoError(t, err)
				require.Equal(t, testCards, cards)
			},
		},
		{
			name: "PageBeyondEndReturnsEmpty",
			input: input{
				page: int32Ptr(10),
				size: int32Ptr(1),
			},
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					Count(gomock.Any()).
					Times(1).
					Return(int64(3), nil)
				repo.EXPECT().
					List(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(cards []domain.CashCard, err error) {
				require.NoError(t, err)
				require.Equal(t, []domain.CashCard{}, cards)
			},
		},
		{
			// int32(page)*int32(size) wraps around to a small positive
			// number; the offset math must not, or a huge page reaches
			// the store as a bogus offset instead of coming back empty.
			name: "HugePageDoesNotOverflow",
			input: input{
				page: int32Ptr(math.MaxInt32),
				size: int32Ptr(math.MaxInt32),
			},
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					Count(gomock.Any()).
					Times(1).
					Return(int64(3), nil)
				repo.EXPECT().
					List(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(cards []domain.CashCard, err error) {
				require.NoError(t, err)
				require.Equal(t, []domain.CashCard{}, cards)
			},
		},
		{
			name: "ErrInvalidSortField",
			input: input{
				sortField: "owner",
			},
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Count(gomock.Any()).Times(0)
				repo.EXPECT().
					List(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(cards []domain.CashCard, err error) {
				require.EqualError(t, err, domain.ErrInvalidSortField.Error())
				require.Empty(t, cards)
			},
		},
		{
			name: "ErrInvalidSortDirection",
			input: input{
				sortField:     "amount",
				sortDirection: "sideways",
			},
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Count(gomock.Any()).Times(0)
				repo.EXPECT().
					List(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(cards []domain.CashCard, err error) {
				require.EqualError(t, err, domain.ErrInvalidSortDirection.Error())
				require.Empty(t, cards)
			},
		},
		{
			name:  "CountError",
			input: input{},
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					Count(gomock.Any()).
					Times(1).
					Return(int64(0), errorspkg.ErrInternal)
				repo.EXPECT().
					List(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(cards []domain.CashCard, err error) {
				require.EqualError(t, err, errorspkg.ErrInternal.Error())
				require.Empty(t, cards)
			},
		},
		{
			name:  "RepoError",
			input: input{},
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					Count(gomock.Any()).
					Times(1).
					Return(int64(3), nil)
				repo.EXPECT().
					List(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(nil, errorspkg.ErrInternal)
			},
			checkResponse: func(cards []domain.CashCard, err error) {
				require.EqualError(t, err, errorspkg.ErrInternal.Error())
				require.Empty(t, cards)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			tc.buildStubs(repo)

			service := New(repo)

			cards, err := service.List(context.Background(),
				tc.input.page, tc.input.size, tc.input.sortField, tc.input.sortDirection)
			tc.checkResponse(cards, err)
		})
	}
}
