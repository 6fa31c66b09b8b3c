package books

import (
	"fmt"
	"math/rand"
	"strings"

	"go.uber.org/zap"

	"github.com/sahiti3636/finwise-ai/db"
	"github.com/sahiti3636/finwise-ai/logger"
	"github.com/sahiti3636/finwise-ai/models"
)

// Catalog returns the seed library. Prices, pages, years and ISBNs are filled
// in at seed time; covers come from the provider chain.
func Catalog() []models.Book {
	return []models.Book{
		{
			Title: "The Psychology of Money", Author: "Morgan Housel",
			Genre: "Business & Management", SubGenre: "Investment",
			Description:     "Timeless lessons on wealth, greed, and happiness. Understanding how people think about money.",
			Rating:          4.5,
			DifficultyLevel: models.LevelBeginner, InvestmentLevel: models.LevelBeginner,
			FinancialTopics: []string{"Behavioral Finance", "Wealth Building", "Psychology"},
			PopularityScore: 9.2,
		},
		{
			Title: "Rich Dad Poor Dad", Author: "Robert T. Kiyosaki",
			Genre: "Business & Management", SubGenre: "Investment",
			Description:     "What the rich teach their kids about money that the poor and middle class do not.",
			Rating:          4.3,
			DifficultyLevel: models.LevelBeginner, InvestmentLevel: models.LevelBeginner,
			FinancialTopics: []string{"Financial Education", "Assets vs Liabilities", "Cash Flow"},
			PopularityScore: 8.8,
		},
		{
			Title: "The Intelligent Investor", Author: "Benjamin Graham",
			Genre: "Business & Management", SubGenre: "Investment",
			Description:     "The definitive book on value investing, written by Warren Buffett's mentor.",
			Rating:          4.6,
			DifficultyLevel: models.LevelAdvanced, InvestmentLevel: models.LevelAdvanced,
			FinancialTopics: []string{"Value Investing", "Stock Analysis", "Risk Management"},
			PopularityScore: 9.0,
		},
		{
			Title: "Think and Grow Rich", Author: "Napoleon Hill",
			Genre: "Business & Management", SubGenre: "Mindset",
			Description:     "Based on interviews with successful people, this book reveals the secrets to success.",
			Rating:          4.4,
			DifficultyLevel: models.LevelBeginner, InvestmentLevel: models.LevelBeginner,
			FinancialTopics: []string{"Success Principles", "Mindset", "Goal Setting"},
			PopularityScore: 8.5,
		},
		{
			Title: "The 7 Habits of Highly Effective People", Author: "Stephen R. Covey",
			Genre: "Business & Management", SubGenre: "Leadership",
			Description:     "A powerful framework for personal and professional effectiveness.",
			Rating:          4.5,
			DifficultyLevel: models.LevelIntermediate, InvestmentLevel: models.LevelIntermediate,
			FinancialTopics: []string{"Leadership", "Productivity", "Personal Development"},
			PopularityScore: 8.9,
		},
		{
			Title: "Thinking, Fast and Slow", Author: "Daniel Kahneman",
			Genre: "Psychology", SubGenre: "Behavioral Economics",
			Description:     "Nobel Prize winner explains the two systems that drive the way we think.",
			Rating:          4.4,
			DifficultyLevel: models.LevelIntermediate, InvestmentLevel: models.LevelIntermediate,
			FinancialTopics: []string{"Decision Making", "Cognitive Biases", "Behavioral Economics"},
			PopularityScore: 8.7,
		},
		{
			Title: "The Power of Habit", Author: "Charles Duhigg",
			Genre: "Psychology", SubGenre: "Behavioral Science",
			Description:     "Why we do what we do in life and business. Understanding habit formation.",
			Rating:          4.3,
			DifficultyLevel: models.LevelBeginner, InvestmentLevel: models.LevelBeginner,
			FinancialTopics: []string{"Habit Formation", "Behavioral Change", "Productivity"},
			PopularityScore: 8.2,
		},
		{
			Title: "Mindset: The New Psychology of Success", Author: "Carol S. Dweck",
			Genre: "Psychology", SubGenre: "Growth Mindset",
			Description:     "How we can learn to fulfill our potential through the power of mindset.",
			Rating:          4.4,
			DifficultyLevel: models.LevelBeginner, InvestmentLevel: models.LevelBeginner,
			FinancialTopics: []string{"Growth Mindset", "Learning", "Personal Development"},
			PopularityScore: 8.4,
		},
		{
			Title: "Atomic Habits", Author: "James Clear",
			Genre: "Psychology", SubGenre: "Behavioral Science",
			Description:     "Tiny changes, remarkable results. An easy and proven way to build good habits.",
			Rating:          4.6,
			DifficultyLevel: models.LevelBeginner, InvestmentLevel: models.LevelBeginner,
			FinancialTopics: []string{"Habit Building", "Personal Development", "Productivity"},
			PopularityScore: 9.1,
		},
		{
			Title: "The Subtle Art of Not Giving a F*ck", Author: "Mark Manson",
			Genre: "Psychology", SubGenre: "Self-Help",
			Description:     "A counterintuitive approach to living a good life.",
			Rating:          4.2,
			DifficultyLevel: models.LevelBeginner, InvestmentLevel: models.LevelBeginner,
			FinancialTopics: []string{"Mindset", "Life Philosophy", "Personal Growth"},
			PopularityScore: 8.0,
		},
		{
			Title: "The 5 AM Club", Author: "Robin Sharma",
			Genre: "Self-Help / Personal Growth", SubGenre: "Productivity",
			Description:     "Own your morning, elevate your life. The morning routine of successful people.",
			Rating:          4.3,
			DifficultyLevel: models.LevelBeginner, InvestmentLevel: models.LevelBeginner,
			FinancialTopics: []string{"Morning Routine", "Productivity", "Personal Development"},
			PopularityScore: 8.3,
		},
		{
			Title: "Deep Work", Author: "Cal Newport",
			Genre: "Self-Help / Personal Growth", SubGenre: "Productivity",
			Description:     "Rules for focused success in a distracted world.",
			Rating:          4.4,
			DifficultyLevel: models.LevelIntermediate, InvestmentLevel: models.LevelIntermediate,
			FinancialTopics: []string{"Focus", "Productivity", "Career Development"},
			PopularityScore: 8.6,
		},
		{
			Title: "The Compound Effect", Author: "Darren Hardy",
			Genre: "Self-Help / Personal Growth", SubGenre: "Success",
			Description:     "Jumpstart your income, your life, your success.",
			Rating:          4.3,
			DifficultyLevel: models.LevelBeginner, InvestmentLevel: models.LevelBeginner,
			FinancialTopics: []string{"Compound Effect", "Success Principles", "Personal Development"},
			PopularityScore: 8.1,
		},
		{
			Title: "Who Moved My Cheese?", Author: "Spencer Johnson",
			Genre: "Self-Help / Personal Growth", SubGenre: "Change Management",
			Description:     "An amazing way to deal with change in your work and in your life.",
			Rating:          4.1,
			DifficultyLevel: models.LevelBeginner, InvestmentLevel: models.LevelBeginner,
			FinancialTopics: []string{"Change Management", "Adaptability", "Personal Growth"},
			PopularityScore: 7.8,
		},
		{
			Title: "The Alchemist", Author: "Paulo Coelho",
			Genre: "Self-Help / Personal Growth", SubGenre: "Inspiration",
			Description:     "A magical story about following your dreams and listening to your heart.",
			Rating:          4.5,
			DifficultyLevel: models.LevelBeginner, InvestmentLevel: models.LevelBeginner,
			FinancialTopics: []string{"Dreams", "Personal Journey", "Inspiration"},
			PopularityScore: 8.7,
		},
		{
			Title: "A Random Walk Down Wall Street", Author: "Burton G. Malkiel",
			Genre: "Business & Management", SubGenre: "Investment",
			Description:     "The time-tested strategy for successful investing.",
			Rating:          4.4,
			DifficultyLevel: models.LevelIntermediate, InvestmentLevel: models.LevelIntermediate,
			FinancialTopics: []string{"Index Investing", "Market Efficiency", "Portfolio Management"},
			PopularityScore: 8.5,
		},
		{
			Title: "The Total Money Makeover", Author: "Dave Ramsey",
			Genre: "Business & Management", SubGenre: "Personal Finance",
			Description:     "A proven plan for financial fitness.",
			Rating:          4.3,
			DifficultyLevel: models.LevelBeginner, InvestmentLevel: models.LevelBeginner,
			FinancialTopics: []string{"Debt Management", "Budgeting", "Emergency Fund"},
			PopularityScore: 8.2,
		},
		{
			Title: "Shoe Dog", Author: "Phil Knight",
			Genre: "Business & Management", SubGenre: "Entrepreneurship",
			Description:     "A memoir by the creator of Nike.",
			Rating:          4.5,
			DifficultyLevel: models.LevelIntermediate, InvestmentLevel: models.LevelIntermediate,
			FinancialTopics: []string{"Entrepreneurship", "Business Building", "Leadership"},
			PopularityScore: 8.8,
		},
		{
			Title: "Good to Great", Author: "Jim Collins",
			Genre: "Business & Management", SubGenre: "Leadership",
			Description:     "Why some companies make the leap and others don't.",
			Rating:          4.4,
			DifficultyLevel: models.LevelAdvanced, InvestmentLevel: models.LevelAdvanced,
			FinancialTopics: []string{"Business Strategy", "Leadership", "Company Analysis"},
			PopularityScore: 8.6,
		},
		{
			Title: "The Lean Startup", Author: "Eric Ries",
			Genre: "Business & Management", SubGenre: "Entrepreneurship",
			Description:     "How constant innovation creates radically successful businesses.",
			Rating:          4.3,
			DifficultyLevel: models.LevelIntermediate, InvestmentLevel: models.LevelIntermediate,
			FinancialTopics: []string{"Startup Strategy", "Innovation", "Business Model"},
			PopularityScore: 8.4,
		},
	}
}

// Seed populates the book catalog. Existing (title, author) rows are left
// untouched, so re-running is safe.
func Seed(covers *CoverService) error {
	for _, book := range Catalog() {
		book.CoverImageURL = covers.CoverURL(book.Title, book.Author, book.Genre)
		book.AmazonURL = fmt.Sprintf("https://www.amazon.com/s?k=%s+%s",
			strings.ReplaceAll(book.Title, " ", "+"),
			strings.ReplaceAll(book.Author, " ", "+"))
		book.Price = 10 + rand.Float64()*40
		book.Pages = 200 + rand.Intn(301)
		book.PublicationYear = 1990 + rand.Intn(34)
		book.ISBN = fmt.Sprintf("978-%d", 100000000+rand.Intn(900000000))

		created, err := db.UpsertBook(&book)
		if err != nil {
			return fmt.Errorf("seeding book %q: %w", book.Title, err)
		}
		if created {
			logger.Get().Info("seeded book", zap.String("title", book.Title))
		}
	}
	return nil
}
