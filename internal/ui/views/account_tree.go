package views

import (
	"fmt"

	"github.com/hance08/keasec/internal/amount"
	"github.com/hance08/keasec/internal/model"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
)

// RenderAccountTree prints accounts nested under their parents. Accounts
// whose parent is not in the list are shown at the top level.
func RenderAccountTree(accounts []*model.Account, balanceGetter func(int64) (decimal.Decimal, error)) error {
	childrenMap := make(map[int64][]*model.Account)
	accountMap := make(map[int64]*model.Account)
	var roots []*model.Account

	for _, acc := range accounts {
		accountMap[acc.ID] = acc
	}

	for _, acc := range accounts {
		if acc.ParentID == nil {
			roots = append(roots, acc)
			continue
		}
		if _, ok := accountMap[*acc.ParentID]; !ok {
			roots = append(roots, acc)
			continue
		}
		childrenMap[*acc.ParentID] = append(childrenMap[*acc.ParentID], acc)
	}

	var buildNode func(acc *model.Account) (pterm.TreeNode, error)
	buildNode = func(acc *model.Account) (pterm.TreeNode, error) {
		displayText := fmt.Sprintf("%s [%s]", acc.Name, acc.Type)
		if balanceGetter != nil {
			balance, err := balanceGetter(acc.ID)
			if err != nil {
				return pterm.TreeNode{}, err
			}
			if acc.Type == model.TypeStock {
				displayText += fmt.Sprintf(" | %s", pterm.Blue(balance.String()+" shares"))
			} else {
				displayText += fmt.Sprintf(" | %s", pterm.Green(amount.Format(balance)+" "+acc.Currency))
			}
		}

		node := pterm.TreeNode{Text: displayText}
		for _, child := range childrenMap[acc.ID] {
			childNode, err := buildNode(child)
			if err != nil {
				return pterm.TreeNode{}, err
			}
			node.Children = append(node.Children, childNode)
		}
		return node, nil
	}

	var treeData []pterm.TreeNode
	for _, root := range roots {
		node, err := buildNode(root)
		if err != nil {
			return err
		}
		treeData = append(treeData, node)
	}

	pterm.DefaultSection.Println("Account Tree")
	if err := pterm.DefaultTree.WithRoot(pterm.TreeNode{Text: "Accounts", Children: treeData}).Render(); err != nil {
		return err
	}
	pterm.Println()
	pterm.Info.Printf("Total: %d accounts\n", len(accounts))
	return nil
}
