package boxscore

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"
)

// BaseURL is the stats site root boxscore links are relative to.
const BaseURL = "https://www.pro-football-reference.com"

// WeekURL builds the summary-page URL for one week of a season.
func WeekURL(year, week int) string {
	return fmt.Sprintf("%s/years/%d/week_%d.htm", BaseURL, year, week)
}

// GameLinks collects the boxscore URLs from a week summary page. The page
// sometimes carries two game_summaries blocks (the first being the previous
// week's spill-over); the last one holds the week's games.
func GameLinks(doc *goquery.Document) []string {
	summaries := doc.Find("div.game_summaries")
	if summaries.Length() == 0 {
		return nil
	}
	block := summaries.Last()

	var links []string
	block.Find("td.gamelink a").Each(func(_ int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		if ok && href != "" {
			links = append(links, BaseURL+href)
		}
	})
	return links
}
