package config

import (
	"time"

	"github.com/akarasev/harvester/internal/types"
)

// Source converts the config entry into the immutable runtime source.
func (s SourceConfig) Source() *types.Source {
	return &types.Source{
		Name:       s.Name,
		FeedURL:    s.FeedURL,
		Encoding:   s.Encoding,
		TimeOffset: s.TimeOffset,
		Extractor:  s.Extractor,
	}
}

// Sources converts the whole configured table.
func Sources(cfg *Config) []*types.Source {
	out := make([]*types.Source, 0, len(cfg.Sources))
	for _, s := range cfg.Sources {
		out = append(out, s.Source())
	}
	return out
}

// DefaultSources is the built-in publisher table. The extractor slug
// keys into the extraction registry; encoding names the charset of the
// publisher's article pages, not of its feed.
func DefaultSources() []SourceConfig {
	return []SourceConfig{
		{Name: "APA.AZ", Extractor: "apa-az", FeedURL: "http://ru.apa.az/rss"},
		{Name: "Грузия-онлайн", Extractor: "apsny", FeedURL: "http://apsny.ge/RSS.xml", Encoding: "windows-1251"},
		{Name: "ЦАМТО", Extractor: "camto", FeedURL: "http://www.armstrade.org/export/news.xml", Encoding: "windows-1251"},
		{Name: "ИРНА", Extractor: "irna", FeedURL: "http://irna.ir//ru/rss.aspx?kind=701", TimeOffset: -(4*time.Hour + 30*time.Minute)},
		{Name: "Коммерсант", Extractor: "kommersant", FeedURL: "http://www.kommersant.ru/RSS/news.xml", Encoding: "windows-1251"},
		{Name: "МигНьюс", Extractor: "mignews", FeedURL: "http://www.mignews.com/export/mig_export3.html", Encoding: "windows-1251"},
		{Name: "News-Asia", Extractor: "news-asia", FeedURL: "http://www.news-asia.ru/rss/all", Encoding: "windows-1251"},
		{Name: "RussiaToday", Extractor: "rt", FeedURL: "http://russian.rt.com/rss/"},
		{Name: "Корреспондент", Extractor: "korrespondent", FeedURL: "http://k.img.com.ua/rss/ru/ukraine.xml"},
		{Name: "УНИАН", Extractor: "unian", FeedURL: "http://rss.unian.net/site/news_rus.rss"},
		{Name: "Укринформ", Extractor: "ukrinform", FeedURL: "http://www.ukrinform.ru/rss/"},
		{Name: "РБК", Extractor: "rbc", FeedURL: "http://static.feed.rbc.ru/rbc/internal/rss.rbc.ru/rbc.ru/mainnews.rss"},
		{Name: "Би-Би-Си", Extractor: "bbc", FeedURL: "http://www.bbc.co.uk/russian/index.xml"},
		{Name: "Лента.ру", Extractor: "lenta", FeedURL: "http://lenta.ru/rss"},
		{Name: "РИА-Новости-Украина", Extractor: "rian", FeedURL: "http://rian.com.ua/export/rss2/politics/index.xml"},
		{Name: "Тренд", Extractor: "trend", FeedURL: "http://www.trend.az/feeds/index.rss"},
		{Name: "Кавказский узел", Extractor: "kavkaz-uzel", FeedURL: "http://www.kavkaz-uzel.ru/articles.rss/"},
		{Name: "Ведомости", Extractor: "vedomosti", FeedURL: "http://www.vedomosti.ru/newsline/out/rss.xml"},
		{Name: "ИТАР-ТАСС", Extractor: "itar-tass", FeedURL: "http://itar-tass.com/rss/v2.xml"},
		{Name: "Росбалт", Extractor: "rosbalt", FeedURL: "http://www.rosbalt.ru/feed/"},
		{Name: "ВПК", Extractor: "vpk", FeedURL: "http://vpk-news.ru/feed"},
		{Name: "Фергана", Extractor: "fergana", FeedURL: "http://www.fergananews.com/rss.php"},
		{Name: "Спутник", Extractor: "sputnik", FeedURL: "https://sputnik-georgia.ru/export/rss2/archive/index.xml"},
		{Name: "Апсны-Пресс", Extractor: "apsny-press", FeedURL: "http://www.apsnypress.info/news/rss/"},
		{Name: "САНА", Extractor: "sana", FeedURL: "http://sana.sy/ru/?feed=rss2"},
		{Name: "ДАН", Extractor: "dan", FeedURL: "http://dan-news.info/feed"},
		{Name: "Анадолу", Extractor: "anadolu", FeedURL: "http://aa.com.tr/ru/rss/default?cat=live"},
		{Name: "Арменпресс", Extractor: "armenpress", FeedURL: "http://armenpress.am/rus/rss/news/"},
	}
}
