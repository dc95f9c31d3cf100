package repositories

import (
	"context"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type OrderItemRepoTestSuite struct {
	suite.Suite
	mock    pgxmock.PgxPoolIface
	repo    OrderItemRepository
	context context.Context
}

func (suite *OrderItemRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	suite.repo = NewOrderItemRepo(mock)
	suite.context = context.Background()
}

func (suite *OrderItemRepoTestSuite) TearDownTest() {
	suite.mock.Close()
}

func TestOrderItemRepoTestSuite(t *testing.T) {
	suite.Run(t, new(OrderItemRepoTestSuite))
}

func (suite *OrderItemRepoTestSuite) TestListByOrder_Success() {
	rows := pgxmock.NewRows([]string{"id", "order_id", "product_id", "quantity", "item_price"}).
		AddRow(int64(1), int64(10), int64(5), 2, 49.99).
		AddRow(int64(2), int64(10), int64(8), 1, 19.99)

	suite.mock.ExpectQuery(`SELECT id, order_id, product_id, quantity, item_price FROM order_items WHERE order_id = \$1 ORDER BY id`).
		WithArgs(int64(10)).
		WillReturnRows(rows)

	result, err := suite.repo.ListByOrder(suite.context, 10)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), result, 2)
	assert.Equal(suite.T(), int64(5), result[0].ProductID)
	assert.Equal(suite.T(), 2, result[0].Quantity)
}

func (suite *OrderItemRepoTestSuite) TestTotalRevenue_Success() {
	suite.mock.ExpectQuery(`SELECT COALESCE\(SUM\(quantity \* item_price\), 0\) FROM order_items`).
		WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(1249.85))

	total, err := suite.repo.TotalRevenue(suite.context)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1249.85, total)
}

func (suite *OrderItemRepoTestSuite) TestTotalRevenue_NoOrderItems() {
	suite.mock.ExpectQuery(`SELECT COALESCE\(SUM\(quantity \* item_price\), 0\) FROM order_items`).
		WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(float64(0)))

	total, err := suite.repo.TotalRevenue(suite.context)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), float64(0), total)
}

func (suite *OrderItemRepoTestSuite) TestTopProductsByRevenue_RanksAndCuts() {
	rows := pgxmock.NewRows([]string{"product_id", "name", "revenue"}).
		AddRow(int64(1), "Gaming Laptop", 100.0).
		AddRow(int64(2), "Mechanical Keyboard", 80.0).
		AddRow(int64(4), "Wireless Mouse", 80.0)

	suite.mock.ExpectQuery(`SELECT oi.product_id, p.name, SUM\(oi.quantity \* oi.item_price\) AS revenue FROM order_items oi JOIN products p ON p.id = oi.product_id GROUP BY oi.product_id, p.name ORDER BY revenue DESC, oi.product_id LIMIT \$1`).
		WithArgs(3).
		WillReturnRows(rows)

	result, err := suite.repo.TopProductsByRevenue(suite.context, 3)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), result, 3)
	assert.Equal(suite.T(), 100.0, result[0].Revenue)
	// revenue ties break on ascending product id
	assert.Equal(suite.T(), int64(2), result[1].ProductID)
	assert.Equal(suite.T(), int64(4), result[2].ProductID)
}

func (suite *OrderItemRepoTestSuite) TestTopProductsByRevenue_FewerProductsThanLimit() {
	rows := pgxmock.NewRows([]string{"product_id", "name", "revenue"}).
		AddRow(int64(1), "Gaming Laptop", 100.0)

	suite.mock.ExpectQuery(`SELECT oi.product_id, p.name, SUM\(oi.quantity \* oi.item_price\) AS revenue`).
		WithArgs(3).
		WillReturnRows(rows)

	result, err := suite.repo.TopProductsByRevenue(suite.context, 3)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), result, 1)
}
