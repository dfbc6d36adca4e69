/*
Implementation of an array-seeded binary search tree (BST), usable as an in-memory ordered set.

## Terminology

node: a single key, plus optional left and right child pointers. every key in the left sub-tree is lower than the node key; every key in the right sub-tree is greater (or equal, see below)

tree: owns the root node, or is empty (nil root)

height: edge count of the longest downward path from a node to a leaf. a nil node has height -1, a leaf has height 0

depth: edge count from the root to a specific node (by identity, not by key)

balanced: for every node, the heights of the two sub-trees differ by at most one

## Tricky Bits

Construction sorts and de-duplicates the input, then picks the element at index len/2 as the root of each sub-range. The result is balanced without any further work.

Insert does not de-duplicate: a key equal to an existing node is routed to the right sub-tree. Rebalance rebuilds through the same construction path, so duplicates admitted by Insert collapse again on rebalance.

Nothing re-balances automatically. A sequence of Insert/Delete calls can degrade the tree to a linked list; call IsBalanced and Rebalance explicitly.

Depth searches by node identity. Use Find to get the node for a key first.

## Hacking

Mutations are written as recursive functions over sub-trees which return the new sub-tree root; the Tree methods reassign Root with the result. Traversals never mutate the tree. None of this is safe for concurrent use; callers must serialize access.
*/
package bst
