// ABOUTME: Press article CLI commands
// ABOUTME: Record, list, update, and delete press coverage
package cli

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"culturadesk/models"
	"culturadesk/store"
)

// AddArticleCommand records a press article.
func AddArticleCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("add-article", flag.ExitOnError)
	title := fs.String("title", "", "Article title (required)")
	author := fs.String("author", "", "Author or outlet")
	summary := fs.String("summary", "", "Short summary")
	content := fs.String("content", "", "Full text")
	date := fs.String("date", "", "Publication date, YYYY-MM-DD (defaults to today)")
	category := fs.String("category", "", "Category")
	tags := fs.String("tags", "", "Comma-separated tags")
	_ = fs.Parse(args)

	if *title == "" {
		return fmt.Errorf("--title is required")
	}

	published := time.Now()
	if *date != "" {
		var err error
		published, err = parseDate(*date)
		if err != nil {
			return err
		}
	}

	article := models.PressArticle{
		ID:       newEntityID(),
		Title:    *title,
		Author:   *author,
		Summary:  *summary,
		Content:  *content,
		Date:     published,
		Category: *category,
		Tags:     splitList(*tags),
	}

	st.Dispatch(store.AddPressArticle{Article: article})
	fmt.Printf("✓ Article recorded: %s (ID: %s)\n", article.Title, article.ID)
	return nil
}

// ListArticlesCommand lists press articles, newest first.
func ListArticlesCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("list-articles", flag.ExitOnError)
	category := fs.String("category", "", "Filter by category")
	_ = fs.Parse(args)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tTITLE\tAUTHOR\tREACTIONS")
	for _, a := range st.State().PressArticles {
		if *category != "" && a.Category != *category {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n",
			a.ID, a.Date.Format("2006-01-02"), a.Title, a.Author, a.Reactions.Total())
	}
	return w.Flush()
}

// UpdateArticleCommand replaces an article wholesale.
func UpdateArticleCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("update-article", flag.ExitOnError)
	id := fs.String("id", "", "Article id (required)")
	title := fs.String("title", "", "New title")
	summary := fs.String("summary", "", "New summary")
	content := fs.String("content", "", "New full text")
	_ = fs.Parse(args)

	if *id == "" {
		return fmt.Errorf("--id is required")
	}

	var article *models.PressArticle
	for _, candidate := range st.State().PressArticles {
		if candidate.ID == *id {
			candidate := candidate
			article = &candidate
			break
		}
	}
	if article == nil {
		return fmt.Errorf("article %s not found", *id)
	}

	if *title != "" {
		article.Title = *title
	}
	if *summary != "" {
		article.Summary = *summary
	}
	if *content != "" {
		article.Content = *content
	}

	st.Dispatch(store.UpdatePressArticle{Article: *article})
	fmt.Printf("✓ Article updated: %s\n", article.Title)
	return nil
}

// DeleteArticleCommand removes an article by id.
func DeleteArticleCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("delete-article", flag.ExitOnError)
	id := fs.String("id", "", "Article id (required)")
	_ = fs.Parse(args)

	if *id == "" {
		return fmt.Errorf("--id is required")
	}

	st.Dispatch(store.DeletePressArticle{ID: *id})
	fmt.Printf("✓ Article deleted: %s\n", *id)
	return nil
}
