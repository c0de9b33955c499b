package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jrsteele09/go-blog-client/internal/errors"
	"github.com/jrsteele09/go-blog-client/posts"
)

var (
	listCategoryID string
	listTagID      string

	postTitle      string
	postContent    string
	postStatus     string
	postCategoryID string
	postTagIDs     []string
)

var postsCmd = &cobra.Command{
	Use:   "posts",
	Short: "List, view and edit posts",
}

var postsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List published posts, optionally filtered",
	RunE:  runPostsList,
}

var postsViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show a single post",
	Args:  cobra.ExactArgs(1),
	RunE:  runPostsView,
}

var postsDraftsCmd = &cobra.Command{
	Use:   "drafts",
	Short: "List your draft posts",
	RunE:  runPostsDrafts,
}

var postsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a post",
	RunE:  runPostsCreate,
}

var postsEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Update a post you own",
	Args:  cobra.ExactArgs(1),
	RunE:  runPostsEdit,
}

var postsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a post you own",
	Args:  cobra.ExactArgs(1),
	RunE:  runPostsDelete,
}

func init() {
	postsListCmd.Flags().StringVar(&listCategoryID, "category", "", "filter by category id")
	postsListCmd.Flags().StringVar(&listTagID, "tag", "", "filter by tag id")

	for _, c := range []*cobra.Command{postsCreateCmd, postsEditCmd} {
		c.Flags().StringVar(&postTitle, "title", "", "post title")
		c.Flags().StringVar(&postContent, "content", "", "post body")
		c.Flags().StringVar(&postStatus, "status", string(posts.StatusPublished), "PUBLISHED or DRAFT")
		c.Flags().StringVar(&postCategoryID, "category", "", "category id")
		c.Flags().StringArrayVar(&postTagIDs, "tag", nil, "tag id (repeatable)")
	}

	postsCmd.AddCommand(postsListCmd, postsViewCmd, postsDraftsCmd, postsCreateCmd, postsEditCmd, postsDeleteCmd)
	rootCmd.AddCommand(postsCmd)
}

func runPostsList(cmd *cobra.Command, args []string) error {
	rt := buildRuntime()
	listed, err := rt.posts.List(posts.Filter{CategoryID: listCategoryID, TagID: listTagID})
	if err != nil {
		return err
	}
	if len(listed) == 0 {
		fmt.Println("No posts found")
		return nil
	}

	identity := rt.manager.Identity()
	for _, post := range listed {
		fmt.Println(renderPost(post, posts.IsOwner(post, identity)))
		fmt.Println()
	}
	return nil
}

func runPostsView(cmd *cobra.Command, args []string) error {
	rt := buildRuntime()
	post, err := rt.posts.Get(args[0])
	if err != nil {
		return err
	}

	fmt.Println(renderPost(*post, posts.IsOwner(*post, rt.manager.Identity())))
	if post.Content != "" {
		fmt.Println()
		fmt.Println(post.Content)
	}
	return nil
}

func runPostsDrafts(cmd *cobra.Command, args []string) error {
	rt, err := authenticatedRuntime()
	if err != nil {
		return err
	}

	drafts, err := rt.posts.Drafts()
	if err != nil {
		return err
	}
	if len(drafts) == 0 {
		fmt.Println("No drafts yet")
		return nil
	}
	for _, draft := range drafts {
		fmt.Println(renderPost(draft, true))
		fmt.Println()
	}
	return nil
}

func runPostsCreate(cmd *cobra.Command, args []string) error {
	rt, err := authenticatedRuntime()
	if err != nil {
		return err
	}
	if postCategoryID == "" {
		return fmt.Errorf("a category is required, pass --category")
	}

	post, err := rt.posts.Create(postFields())
	if err != nil {
		return err
	}
	fmt.Printf("Created post %s\n", post.ID)
	return nil
}

func runPostsEdit(cmd *cobra.Command, args []string) error {
	rt, err := authenticatedRuntime()
	if err != nil {
		return err
	}

	post, err := ownedPost(rt, args[0])
	if err != nil {
		return err
	}

	fields := postFields()
	if !cmd.Flags().Changed("status") {
		// An edit must not silently publish a draft.
		fields.Status = post.Status
	}
	if fields.Title == "" {
		fields.Title = post.Title
	}
	if fields.Content == "" {
		fields.Content = post.Content
	}
	if fields.CategoryID == "" && post.Category != nil {
		fields.CategoryID = post.Category.ID
	}
	if fields.CategoryID == "" {
		return fmt.Errorf("a category is required, pass --category")
	}
	if fields.TagIDs == nil {
		for _, tag := range post.Tags {
			fields.TagIDs = append(fields.TagIDs, tag.ID)
		}
	}

	updated, err := rt.posts.Update(post.ID, fields)
	if err != nil {
		return err
	}
	fmt.Printf("Updated post %s\n", updated.ID)
	return nil
}

func runPostsDelete(cmd *cobra.Command, args []string) error {
	rt, err := authenticatedRuntime()
	if err != nil {
		return err
	}

	post, err := ownedPost(rt, args[0])
	if err != nil {
		return err
	}
	if err := rt.posts.Delete(post.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted post %s\n", post.ID)
	return nil
}

// authenticatedRuntime refuses to run authorized commands without a valid
// session, the CLI analogue of redirecting to the login page.
func authenticatedRuntime() (*runtime, error) {
	rt := buildRuntime()
	if !rt.manager.Authenticated() {
		return nil, fmt.Errorf("%w: run 'blogcli login <email>' first", errors.ErrNotAuthenticated)
	}
	return rt, nil
}

// ownedPost fetches a post and applies the client-side ownership gate. The
// backend still enforces authorization on the call itself; this only keeps
// the CLI from offering mutations that would be rejected anyway.
func ownedPost(rt *runtime, postID string) (*posts.Post, error) {
	post, err := rt.posts.Get(postID)
	if err != nil {
		return nil, err
	}
	if !posts.IsOwner(*post, rt.manager.Identity()) {
		return nil, fmt.Errorf("%w: you are not the author of post %s", errors.ErrForbidden, postID)
	}
	return post, nil
}

func postFields() *posts.Fields {
	return &posts.Fields{
		Title:      postTitle,
		Content:    postContent,
		Status:     posts.Status(postStatus),
		CategoryID: postCategoryID,
		TagIDs:     postTagIDs,
	}
}
