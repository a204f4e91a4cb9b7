package repository_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"
)

type StagingTestSuite struct {
	RepositorySuite
}

func TestStagingTestSuite(t *testing.T) {
	suite.Run(t, new(StagingTestSuite))
}

func (suite *StagingTestSuite) TestListMeasurements_OrdersByCocktail() {
	suite.mock.ExpectQuery(`^SELECT (.+) FROM "measurements" ORDER BY cocktail_name, id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "cocktail_name", "ingredient_name", "quantity"}).
			AddRow(uint(1), "Daiquiri", "White Rum", "2 oz").
			AddRow(uint(2), "Daiquiri", "Lime Juice", "1 oz"))

	measurements, err := suite.repository.ListMeasurements(context.Background())
	suite.Require().NoError(err)
	suite.Len(measurements, 2)
	suite.Equal("Daiquiri", measurements[0].CocktailName)
	suite.Equal("White Rum", measurements[0].IngredientName)
	suite.Equal("2 oz", measurements[0].Quantity)
}

func (suite *StagingTestSuite) TestDistinctCocktailDBDrinks_AggregatesPerDrink() {
	suite.mock.ExpectQuery(`^SELECT drink as name, (.+) FROM "the_cocktail_db" GROUP BY "drink" ORDER BY drink`).
		WillReturnRows(sqlmock.NewRows([]string{"name", "category", "glass", "instructions"}).
			AddRow("Margarita", "Ordinary Drink", "Cocktail glass", "Rub the rim..."))

	drinks, err := suite.repository.DistinctCocktailDBDrinks(context.Background(), 0)
	suite.Require().NoError(err)
	suite.Len(drinks, 1)
	suite.Equal("Margarita", drinks[0].Name)
	suite.Equal("Cocktail glass", *drinks[0].Glass)
	suite.Equal("Rub the rim...", *drinks[0].Instructions)
}

func (suite *StagingTestSuite) TestDistinctCocktailDBDrinks_AppliesLimit() {
	suite.mock.ExpectQuery(`^SELECT drink as name, (.+) FROM "the_cocktail_db" GROUP BY "drink" ORDER BY drink LIMIT (.+)`).
		WillReturnRows(sqlmock.NewRows([]string{"name", "category", "glass", "instructions"}).
			AddRow("Margarita", nil, nil, nil))

	drinks, err := suite.repository.DistinctCocktailDBDrinks(context.Background(), 1)
	suite.Require().NoError(err)
	suite.Len(drinks, 1)
	suite.Nil(drinks[0].Glass)
}

func (suite *StagingTestSuite) TestCocktailDBIngredients_SkipsNullIngredients() {
	suite.mock.ExpectQuery(`^SELECT ingredient_order, ingredient, measure FROM "the_cocktail_db" WHERE drink = \$1 AND ingredient IS NOT NULL ORDER BY ingredient_order NULLS LAST`).
		WithArgs("Margarita").
		WillReturnRows(sqlmock.NewRows([]string{"ingredient_order", "ingredient", "measure"}).
			AddRow(1, "Tequila", "1 1/2 oz").
			AddRow(2, "Triple sec", "1/2 oz"))

	links, err := suite.repository.CocktailDBIngredients(context.Background(), "Margarita")
	suite.Require().NoError(err)
	suite.Len(links, 2)
	suite.Equal("Tequila", links[0].Ingredient)
	suite.Equal(1, *links[0].IngredientOrder)
	suite.Equal("1/2 oz", *links[1].Measure)
}

func (suite *StagingTestSuite) TestDistinctBostonCocktails_AggregatesPerName() {
	suite.mock.ExpectQuery(`^SELECT name, max\(category\) as category FROM "boston_cocktails" GROUP BY "name" ORDER BY name`).
		WillReturnRows(sqlmock.NewRows([]string{"name", "category"}).
			AddRow("Daiquiri", "Rum - Daiquiris"))

	drinks, err := suite.repository.DistinctBostonCocktails(context.Background(), 0)
	suite.Require().NoError(err)
	suite.Len(drinks, 1)
	suite.Equal("Daiquiri", drinks[0].Name)
	suite.Nil(drinks[0].Instructions)
}

func (suite *StagingTestSuite) TestBostonIngredients_ParsesNumericOrder() {
	suite.mock.ExpectQuery(`^SELECT case when ingredient_number (.+) FROM "boston_cocktails" WHERE name = \$1 AND ingredient IS NOT NULL ORDER BY ingredient_order NULLS LAST`).
		WithArgs("Daiquiri").
		WillReturnRows(sqlmock.NewRows([]string{"ingredient_order", "ingredient", "measure"}).
			AddRow(1, "White Rum", "2 oz").
			AddRow(nil, "Garnish", nil))

	links, err := suite.repository.BostonIngredients(context.Background(), "Daiquiri")
	suite.Require().NoError(err)
	suite.Len(links, 2)
	suite.Equal(1, *links[0].IngredientOrder)
	suite.Nil(links[1].IngredientOrder)
	suite.Nil(links[1].Measure)
}
